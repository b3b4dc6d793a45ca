package models

import (
	"strings"

	"github.com/beevik/etree"
)

// Name is a person's name.
//
// Required: initials (first letters of the first names and the last name),
// first_name, last_name. Optional: prefix, common in Dutch names (for
// example "van de").
type Name struct {
	Model
}

// NewName wraps a name element.
func NewName(elem *etree.Element) *Name {
	n := &Name{Model: *New(elem, nil)}
	n.declare("initials", "first_name", "prefix", "last_name")
	return n
}

// String renders the name as "first prefix last", dropping the prefix when
// there is none.
func (n *Name) String() string {
	first, _ := n.GetString("first_name")
	last, _ := n.GetString("last_name")
	if n.Has("prefix") {
		prefix, _ := n.GetString("prefix")
		return strings.Join([]string{first, prefix, last}, " ")
	}
	return first + " " + last
}

// Domain is a domain name, split into the part before the extension and the
// extension itself.
type Domain struct {
	Model
}

// NewDomain wraps a domain element.
func NewDomain(elem *etree.Element) *Domain {
	d := &Domain{Model: *New(elem, nil)}
	d.declare("name", "extension")
	return d
}

// String renders the full domain name, "name.extension".
func (d *Domain) String() string {
	name, _ := d.GetString("name")
	ext, _ := d.GetString("extension")
	return name + "." + ext
}

// Nameserver is a nameserver with an IPv4 or IPv6 address.
//
// name holds the hostname; at least one of ip (IPv4) and ip6 (IPv6) is set.
type Nameserver struct {
	Model
}

// NewNameserver wraps a nameserver element.
func NewNameserver(elem *etree.Element) *Nameserver {
	n := &Nameserver{Model: *New(elem, nil)}
	n.declare("name", "ip", "ip6")
	return n
}

// Record is a DNS record.
//
// type is one of A, AAAA, CNAME, MX, SPF or TXT. name is the part of the
// hostname before the domain name (www, ftp). prio is required for MX
// records and ignored for every other type. ttl is in seconds.
type Record struct {
	Model
}

// NewRecord wraps a DNS record element.
func NewRecord(elem *etree.Element) *Record {
	r := &Record{Model: *New(elem, nil)}
	r.declare("type", "name", "value", "prio", "ttl")
	return r
}

// History is a single modification of a piece of data: when it happened
// (date), the old contents (was) and the new contents (is).
type History struct {
	Model
}

// NewHistory wraps a history element.
func NewHistory(elem *etree.Element) *History {
	h := &History{Model: *New(elem, nil)}
	h.declare("date", "was", "is")
	return h
}

// Address is a physical street address.
type Address struct {
	Model
}

// NewAddress wraps an address element.
func NewAddress(elem *etree.Element) *Address {
	a := &Address{Model: *New(elem, nil)}
	a.declare("street", "number", "suffix", "zipcode", "city", "state", "country")
	return a
}

// Phone is an international phone number.
type Phone struct {
	Model
}

// NewPhone wraps a phone number element.
func NewPhone(elem *etree.Element) *Phone {
	p := &Phone{Model: *New(elem, nil)}
	p.declare("country_code", "area_code", "subscriber_number")
	return p
}

// String renders the parts of the phone number separated by spaces.
func (p *Phone) String() string {
	cc, _ := p.GetString("country_code")
	ac, _ := p.GetString("area_code")
	sn, _ := p.GetString("subscriber_number")
	return strings.Join([]string{cc, ac, sn}, " ")
}

// Reseller is a reseller profile.
type Reseller struct {
	Model
}

// NewReseller wraps a reseller element.
func NewReseller(elem *etree.Element) *Reseller {
	r := &Reseller{Model: *New(elem, nil)}
	r.declare("id", "company_name", "address", "phone", "fax", "vatperc",
		"balance", "reserved_balance")
	return r
}

// Address returns the reseller's street address.
func (r *Reseller) Address() *Address {
	return submodel(&r.Model, "address", NewAddress)
}

// Phone returns the reseller's phone number.
func (r *Reseller) Phone() *Phone {
	return submodel(&r.Model, "phone", NewPhone)
}

// Fax returns the reseller's fax number.
func (r *Reseller) Fax() *Phone {
	return submodel(&r.Model, "fax", NewPhone)
}

// Customer is a customer handle.
type Customer struct {
	Model
}

// NewCustomer wraps a customer element.
func NewCustomer(elem *etree.Element) *Customer {
	c := &Customer{Model: *New(elem, nil)}
	c.declare("handle", "company_name", "vat", "name", "gender", "address",
		"phone", "fax", "email")
	return c
}

// Name returns the customer's personal name.
func (c *Customer) Name() *Name {
	return submodel(&c.Model, "name", NewName)
}

// Address returns the customer's street address.
func (c *Customer) Address() *Address {
	return submodel(&c.Model, "address", NewAddress)
}

// Phone returns the customer's phone number.
func (c *Customer) Phone() *Phone {
	return submodel(&c.Model, "phone", NewPhone)
}

// Fax returns the customer's fax number.
func (c *Customer) Fax() *Phone {
	return submodel(&c.Model, "fax", NewPhone)
}

// SSLProduct is an orderable SSL certificate product.
type SSLProduct struct {
	Model
}

// NewSSLProduct wraps an SSL product element.
func NewSSLProduct(elem *etree.Element) *SSLProduct {
	p := &SSLProduct{Model: *New(elem, nil)}
	p.declare("id", "name", "brand_name", "category", "is_mobile_supported",
		"is_idn_supported", "is_sgc_supported", "is_wildcard_supported",
		"is_extended_validation_supported", "delivery_time",
		"free_refund_period", "free_reissue_period", "max_period",
		"number_of_domains", "encryption", "root", "warranty", "prices",
		"supported_software", "description")
	return p
}

// SSLOrder is an ordered SSL certificate.
type SSLOrder struct {
	Model
}

// NewSSLOrder wraps an SSL order element.
func NewSSLOrder(elem *etree.Element) *SSLOrder {
	o := &SSLOrder{Model: *New(elem, nil)}
	o.declare("id", "common_name", "product_name", "brand_name", "status",
		"order_date", "active_date", "expiration_date", "host_names",
		"organization_handle", "administrative_handle", "technical_handle",
		"billing_handle", "email_approver", "csr", "certificate",
		"root_certificate")
	return o
}

// Extension is a domain extension (TLD) with its transfer and pricing
// properties.
type Extension struct {
	Model
}

// NewExtension wraps an extension element.
func NewExtension(elem *etree.Element) *Extension {
	e := &Extension{Model: *New(elem, nil)}
	e.declare("name", "transfer_available", "is_transfer_auth_code_required",
		"domicile_available", "usage_count", "description", "prices",
		"is_authorization_code_required", "is_locking_allowed",
		"is_trade_allowed", "restore_price")
	return e
}
