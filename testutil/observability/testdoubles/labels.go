package testdoubles

func copyLabels(labels map[string]string) map[string]string {
	c := make(map[string]string, len(labels))
	for k, v := range labels {
		c[k] = v
	}

	return c
}

func labelsContain(labels map[string]string, key, value string) bool {
	v, ok := labels[key]

	return ok && v == value
}
