// Package translate renders user-visible messages for the TOY interpreter
// in the language of the host locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is the language used when the host reports no locale.
const Fallback = "en-US"

var (
	printer *message.Printer
	once    sync.Once
)

func getPrinter() *message.Printer {
	once.Do(func() {
		if printer != nil {
			return
		}
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("toy: locale: %v", err)
		}

		if len(locales) == 0 {
			locales = []string{Fallback}
		}

		printer = message.NewPrinter(message.MatchLanguage(locales...))
	})

	return printer
}

// SetLanguage forces the message language, overriding the host locale.
func SetLanguage(tag language.Tag) {
	once.Do(func() {})
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return getPrinter().Sprintf(key, args...)
}
