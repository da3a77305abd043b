package enrich

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// freeMail are registrable domains of public mailbox providers. Their
// addresses say nothing about the organization's website.
var freeMail = map[string]struct{}{
	"gmail.com":      {},
	"googlemail.com": {},
	"icloud.com":     {},
	"me.com":         {},
	"mac.com":        {},
	"aol.com":        {},
	"gmx.de":         {},
	"gmx.net":        {},
	"gmx.at":         {},
	"web.de":         {},
	"t-online.de":    {},
	"freenet.de":     {},
	"mail.ru":        {},
	"yandex.ru":      {},
	"proton.me":      {},
	"protonmail.com": {},
	"orange.fr":      {},
	"free.fr":        {},
	"laposte.net":    {},
	"libero.it":      {},
	"wp.pl":          {},
	"o2.pl":          {},
	"seznam.cz":      {},
	"qq.com":         {},
	"163.com":        {},
	"zoho.com":       {},
}

// freeMailBrands match providers registered under many country suffixes, e.g. yahoo.co.uk.
var freeMailBrands = map[string]struct{}{
	"yahoo":   {},
	"hotmail": {},
	"outlook": {},
	"live":    {},
	"msn":     {},
}

// EmailDomain returns the registrable domain of an email address, or an empty
// string when the address is malformed or belongs to a free-mail provider.
func EmailDomain(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return ""
	}
	host := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(email[at+1:])), ".")

	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	if _, ok := freeMail[registrable]; ok {
		return ""
	}
	label, _, _ := strings.Cut(registrable, ".")
	if _, ok := freeMailBrands[label]; ok {
		return ""
	}

	return registrable
}
