// Package returnresource implements the return use case, including late fee assessment.
package returnresource
