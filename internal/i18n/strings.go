package i18n

import "github.com/go-playground/locales"

var translations = map[string]struct {
	texts   []entry
	plurals []plural
}{
	"en": {
		texts: []entry{
			{Header, "Route of the day"},
			{Counter, "Done: {0} of {1}"},
			{OpenGallery, "Go to the screenshot warehouse"},
			{GalleryTitle, "Screenshot warehouse"},
			{GrantAccess, "Grant gallery access"},
			{Empty, "No screenshots found"},
			{LoadFailed, "Could not read the gallery"},
			{Back, "Back"},
		},
		plurals: []plural{
			{Found, locales.PluralRuleOne, "Found {0} screenshot"},
			{Found, locales.PluralRuleOther, "Found {0} screenshots"},
		},
	},
	"uk_UA": {
		texts: []entry{
			{Header, "Маршрут дня"},
			{Counter, "Виконано: {0} з {1}"},
			{OpenGallery, "Перейти на Склад скрінів"},
			{GalleryTitle, "Склад скріншотів"},
			{GrantAccess, "Дозвольте доступ до галереї"},
			{Empty, "Скріншотів не знайдено"},
			{LoadFailed, "Не вдалося прочитати галерею"},
			{Back, "Назад"},
		},
		plurals: []plural{
			{Found, locales.PluralRuleOne, "Знайдено {0} скріншот"},
			{Found, locales.PluralRuleFew, "Знайдено {0} скріншоти"},
			{Found, locales.PluralRuleMany, "Знайдено {0} скріншотів"},
			{Found, locales.PluralRuleOther, "Знайдено {0} скріншота"},
		},
	},
}
