package validation

import (
	"regexp"
	"strings"
)

const (
	maxEmailLength     = 254
	maxEmailLocalPart  = 64
	emailLocalAtom     = "[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+"
	emailDomainLabel   = `[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`
	emailPatternSource = "^" + emailLocalAtom + `(?:\.` + emailLocalAtom + ")*@" +
		emailDomainLabel + `(?:\.` + emailDomainLabel + ")*$"
)

var emailPattern = regexp.MustCompile(emailPatternSource)

func isEmailAddress(raw string) bool {
	if len(raw) > maxEmailLength {
		return false
	}
	at := strings.IndexByte(raw, '@')
	if at < 1 || at > maxEmailLocalPart {
		return false
	}
	return emailPattern.MatchString(raw)
}
