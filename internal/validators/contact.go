package validators

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9 ().-]{7,20}$`)

// IsEmailValid is a syntactic check only; deliverability is not our
// problem here.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}

func IsPhoneValid(phone string) bool {
	return phonePattern.MatchString(phone)
}
