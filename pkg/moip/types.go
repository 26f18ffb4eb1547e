package moip

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// dateLayout is the wire layout of calendar dates.
const dateLayout = "2006-01-02"

// timestampLayouts are the layouts the API uses for instants, most specific first.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.000-07",
	"2006-01-02T15:04:05-07",
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
	time.RFC3339Nano,
	time.RFC3339,
}

// Date is a calendar date encoded as "2006-01-02".
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// String returns the date in wire format.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	if raw == "" {
		return nil
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidDate, raw, err)
	}

	d.Time = parsed

	return nil
}

// MarshalYAML renders the date in wire format.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML parses a date from a YAML request file.
func (d *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string

	err := unmarshal(&raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidDate, raw, err)
	}

	d.Time = parsed

	return nil
}

// Timestamp is an instant as sent by the API, which uses short zone offsets such as "-02".
type Timestamp struct {
	time.Time
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTimestamp, err)
	}

	if raw == "" {
		return nil
	}

	for _, layout := range timestampLayouts {
		parsed, parseErr := time.Parse(layout, raw)
		if parseErr == nil {
			t.Time = parsed

			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
}

// Links represents the _links document of a resource.
type Links map[string]Link

// Link represents a single link. Checkout links carry redirect and print URLs instead of href.
type Link struct {
	Href         string `json:"href,omitempty"         yaml:"href,omitempty"`
	Title        string `json:"title,omitempty"        yaml:"title,omitempty"`
	RedirectHref string `json:"redirectHref,omitempty" yaml:"redirectHref,omitempty"`
	PrintHref    string `json:"printHref,omitempty"    yaml:"printHref,omitempty"`
}

// Self returns the resource's own URL.
func (l Links) Self() string {
	return l["self"].Href
}

// Order returns the URL of the order a payment belongs to.
func (l Links) Order() string {
	return l["order"].Href
}

// PayBoleto returns the checkout URL of a boleto payment.
func (l Links) PayBoleto() string {
	return l["payBoleto"].RedirectHref
}

// PayBoletoPrint returns the printable boleto URL.
func (l Links) PayBoletoPrint() string {
	return l["payBoleto"].PrintHref
}

// PayOnlineBankDebit returns the checkout URL of an online bank debit, whatever the bank.
func (l Links) PayOnlineBankDebit() string {
	for _, key := range []string{"payOnlineBankDebitItau", "payOnlineBankDebitBB", "payOnlineBankDebitBradesco", "payOnlineBankDebitBanrisul"} {
		if link, ok := l[key]; ok {
			return link.RedirectHref
		}
	}

	return ""
}

// Amount represents money values in cents.
type Amount struct {
	Currency       string     `json:"currency,omitempty"       yaml:"currency,omitempty"`
	Total          *int       `json:"total,omitempty"          yaml:"total,omitempty"`
	Fees           *int       `json:"fees,omitempty"           yaml:"fees,omitempty"`
	Refunds        *int       `json:"refunds,omitempty"        yaml:"refunds,omitempty"`
	Liquid         *int       `json:"liquid,omitempty"         yaml:"liquid,omitempty"`
	OtherReceivers *int       `json:"otherReceivers,omitempty" yaml:"otherReceivers,omitempty"`
	Paid           *int       `json:"paid,omitempty"           yaml:"paid,omitempty"`
	Subtotals      *Subtotals `json:"subtotals,omitempty"      yaml:"subtotals,omitempty"`
}

// GetTotal returns the total or zero.
func (a *Amount) GetTotal() int {
	if a == nil || a.Total == nil {
		return 0
	}

	return *a.Total
}

// Subtotals breaks an order amount down.
type Subtotals struct {
	Shipping *int `json:"shipping,omitempty" yaml:"shipping,omitempty"`
	Addition *int `json:"addition,omitempty" yaml:"addition,omitempty"`
	Discount *int `json:"discount,omitempty" yaml:"discount,omitempty"`
	Items    *int `json:"items,omitempty"    yaml:"items,omitempty"`
}

// Address is a postal address.
type Address struct {
	Street       string `json:"street,omitempty"       yaml:"street,omitempty"`
	StreetNumber string `json:"streetNumber,omitempty" yaml:"streetNumber,omitempty"`
	Complement   string `json:"complement,omitempty"   yaml:"complement,omitempty"`
	District     string `json:"district,omitempty"     yaml:"district,omitempty"`
	City         string `json:"city,omitempty"         yaml:"city,omitempty"`
	State        string `json:"state,omitempty"        yaml:"state,omitempty"`
	Country      string `json:"country,omitempty"      yaml:"country,omitempty"`
	ZipCode      string `json:"zipCode,omitempty"      yaml:"zipCode,omitempty"`
}

// Phone is a phone number.
type Phone struct {
	CountryCode string `json:"countryCode,omitempty" yaml:"countryCode,omitempty"`
	AreaCode    string `json:"areaCode,omitempty"    yaml:"areaCode,omitempty"`
	Number      string `json:"number,omitempty"      yaml:"number,omitempty"`
}

// TaxDocumentType identifies a Brazilian tax document.
type TaxDocumentType string

// Tax document types.
const (
	TaxDocumentCPF  TaxDocumentType = "CPF"
	TaxDocumentCNPJ TaxDocumentType = "CNPJ"
)

// TaxDocument is a tax identification document.
type TaxDocument struct {
	Type   TaxDocumentType `json:"type,omitempty"   yaml:"type,omitempty"`
	Number string          `json:"number,omitempty" yaml:"number,omitempty"`
}

// CPF returns an individual's tax document.
func CPF(number string) *TaxDocument {
	return &TaxDocument{Type: TaxDocumentCPF, Number: number}
}

// CNPJ returns a company's tax document.
func CNPJ(number string) *TaxDocument {
	return &TaxDocument{Type: TaxDocumentCNPJ, Number: number}
}

// Event is a status transition recorded on a resource.
type Event struct {
	Type        string     `json:"type"                  yaml:"type"`
	CreatedAt   *Timestamp `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
}

// ListParams are the filters accepted by list endpoints.
type ListParams struct {
	Limit   int
	Offset  int
	Filters map[string]string
	Query   string
}

// NewListParams returns empty list parameters.
func NewListParams() *ListParams {
	return &ListParams{Filters: make(map[string]string)}
}

// WithLimit sets the page size.
func (p *ListParams) WithLimit(limit int) *ListParams {
	p.Limit = limit

	return p
}

// WithOffset sets the page offset.
func (p *ListParams) WithOffset(offset int) *ListParams {
	p.Offset = offset

	return p
}

// WithFilter adds a filter such as ("status", "in(PAID,WAITING)").
func (p *ListParams) WithFilter(field, expression string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string]string)
	}

	p.Filters[field] = expression

	return p
}

// ToValues converts the parameters to a query string. Filters are joined with "|".
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.Offset > 0 {
		values.Set("offset", strconv.Itoa(p.Offset))
	}

	if p.Query != "" {
		values.Set("q", p.Query)
	}

	if len(p.Filters) > 0 {
		fields := make([]string, 0, len(p.Filters))
		for field := range p.Filters {
			fields = append(fields, field)
		}

		sort.Strings(fields)

		expressions := make([]string, 0, len(fields))
		for _, field := range fields {
			expressions = append(expressions, field+"::"+p.Filters[field])
		}

		values.Set("filters", strings.Join(expressions, "|"))
	}

	return values
}
