// Package translate formats user-facing messages for the current locale.
//
// Message keys are en-US fmt formats. The locale comes from the system
// unless the isolang command selects one with Use.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// FALLBACK_LOCALE is used when no other locale is known.
const FALLBACK_LOCALE = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("isolang: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the message locale from a preference list of BCP 47 tags.
// An empty list selects FALLBACK_LOCALE.
func Use(locales ...string) {
	if len(locales) == 0 {
		locales = []string{FALLBACK_LOCALE}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
