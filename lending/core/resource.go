package core

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Kind tells the resource variants apart. It keys the lending policy.
type Kind string

const (
	KindBook           Kind = "Book"
	KindDigitalContent Kind = "DigitalContent"
	KindPeriodical     Kind = "Periodical"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Resource is a lendable item. The set of variants is closed: Book, DigitalContent and Periodical.
type Resource interface {
	ResourceID() ResourceIDString
	ResourceTitle() string
	Kind() Kind
	isResource()
}

// Renewable is a resource whose loan may be renewed. Whether a renewal succeeds depends
// on the kind and on the current availability of the resource.
type Renewable interface {
	Resource
	CanRenew(available bool) bool
}

// Reservable is a resource members can place a reservation on.
// DigitalContent does not implement it.
type Reservable interface {
	Resource
	reservable()
}

// Book is a printed book.
type Book struct {
	ID     ResourceIDString `validate:"required"`
	Title  string           `validate:"required"`
	Author string
	ISBN   string
}

// BuildBook creates a validated Book.
func BuildBook(id ResourceIDString, title, author, isbn string) (Book, error) {
	b := Book{ID: id, Title: title, Author: author, ISBN: isbn}
	if err := validate.Struct(b); err != nil {
		return Book{}, errors.Join(ErrInvalidResource, err)
	}

	return b, nil
}

func (b Book) ResourceID() ResourceIDString { return b.ID }
func (b Book) ResourceTitle() string        { return b.Title }
func (b Book) Kind() Kind                   { return KindBook }
func (b Book) isResource()                  {}
func (b Book) reservable()                  {}

// CanRenew allows renewing a book only while it is available.
func (b Book) CanRenew(available bool) bool {
	return available
}

// DigitalContent is a downloadable file, e.g. an e-book or audio book.
type DigitalContent struct {
	ID         ResourceIDString `validate:"required"`
	Title      string           `validate:"required"`
	FileSizeMB float64          `validate:"gte=0"`
	Format     string
}

// BuildDigitalContent creates a validated DigitalContent.
func BuildDigitalContent(id ResourceIDString, title string, fileSizeMB float64, format string) (DigitalContent, error) {
	d := DigitalContent{ID: id, Title: title, FileSizeMB: fileSizeMB, Format: format}
	if err := validate.Struct(d); err != nil {
		return DigitalContent{}, errors.Join(ErrInvalidResource, err)
	}

	return d, nil
}

func (d DigitalContent) ResourceID() ResourceIDString { return d.ID }
func (d DigitalContent) ResourceTitle() string        { return d.Title }
func (d DigitalContent) Kind() Kind                   { return KindDigitalContent }
func (d DigitalContent) isResource()                  {}

// CanRenew always allows renewing digital content.
func (d DigitalContent) CanRenew(bool) bool {
	return true
}

// Periodical is a single issue of a magazine or journal.
type Periodical struct {
	ID          ResourceIDString `validate:"required"`
	Title       string           `validate:"required"`
	IssueNumber int              `validate:"gte=0"`
	Frequency   string
}

// BuildPeriodical creates a validated Periodical.
func BuildPeriodical(id ResourceIDString, title string, issueNumber int, frequency string) (Periodical, error) {
	p := Periodical{ID: id, Title: title, IssueNumber: issueNumber, Frequency: frequency}
	if err := validate.Struct(p); err != nil {
		return Periodical{}, errors.Join(ErrInvalidResource, err)
	}

	return p, nil
}

func (p Periodical) ResourceID() ResourceIDString { return p.ID }
func (p Periodical) ResourceTitle() string        { return p.Title }
func (p Periodical) Kind() Kind                   { return KindPeriodical }
func (p Periodical) isResource()                  {}
func (p Periodical) reservable()                  {}

// CanRenew allows renewing a periodical only while it is available.
func (p Periodical) CanRenew(available bool) bool {
	return available
}

var (
	_ Renewable  = Book{}
	_ Renewable  = DigitalContent{}
	_ Renewable  = Periodical{}
	_ Reservable = Book{}
	_ Reservable = Periodical{}
)
