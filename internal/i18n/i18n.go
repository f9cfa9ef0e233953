package i18n

import (
	"embed"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed *.toml
var localeFS embed.FS

var bundle *i18n.Bundle

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.zh.toml"} {
		data, err := localeFS.ReadFile(file)
		if err != nil {
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, file); err != nil {
			panic("failed to load translations from " + file + ": " + err.Error())
		}
	}
}

// Localizer wraps the go-i18n localizer with the two lookup shapes the UI
// actually uses.
type Localizer struct {
	localizer *i18n.Localizer
}

// NewLocalizer creates a localizer for the given locale. Unknown locales
// fall back to English.
func NewLocalizer(locale string) *Localizer {
	var lang language.Tag
	switch locale {
	case "zh", "zh-CN", "zh_CN":
		lang = language.Chinese
	default:
		lang = language.English
	}

	return &Localizer{
		localizer: i18n.NewLocalizer(bundle, lang.String()),
	}
}

// T translates a message ID. A missing message returns the ID itself so an
// untranslated key is visible instead of fatal.
func (l *Localizer) T(messageID string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: messageID,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// TF translates a message with template data.
func (l *Localizer) TF(messageID string, templateData map[string]interface{}) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	})
	if err != nil {
		return messageID
	}
	return msg
}
