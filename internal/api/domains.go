package api

import (
	"fmt"
	"strconv"
)

// Domain selects the Amazon marketplace a request is scoped to.
type Domain int

// Amazon marketplaces by Keepa domain id.
const (
	DomainCom   Domain = 1  // amazon.com
	DomainCoUK  Domain = 2  // amazon.co.uk
	DomainDe    Domain = 3  // amazon.de
	DomainFr    Domain = 4  // amazon.fr
	DomainCoJP  Domain = 5  // amazon.co.jp
	DomainCa    Domain = 6  // amazon.ca
	DomainCn    Domain = 7  // amazon.cn
	DomainIt    Domain = 8  // amazon.it
	DomainEs    Domain = 9  // amazon.es
	DomainIn    Domain = 10 // amazon.in
	DomainComMX Domain = 11 // amazon.com.mx
	DomainComBR Domain = 12 // amazon.com.br
)

var domainNames = map[Domain]string{
	DomainCom:   "com",
	DomainCoUK:  "co.uk",
	DomainDe:    "de",
	DomainFr:    "fr",
	DomainCoJP:  "co.jp",
	DomainCa:    "ca",
	DomainCn:    "cn",
	DomainIt:    "it",
	DomainEs:    "es",
	DomainIn:    "in",
	DomainComMX: "com.mx",
	DomainComBR: "com.br",
}

var domainsByName = make(map[string]Domain, len(domainNames))

func init() {
	for d, name := range domainNames {
		domainsByName[name] = d
	}
}

// ParseDomain resolves a marketplace TLD suffix ("com", "co.uk", ...)
// to its Domain.
func ParseDomain(name string) (Domain, error) {
	d, ok := domainsByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown amazon domain %q", name)
	}
	return d, nil
}

// String returns the TLD suffix, or the numeric id for unlisted values.
func (d Domain) String() string {
	if name, ok := domainNames[d]; ok {
		return name
	}
	return strconv.Itoa(int(d))
}
