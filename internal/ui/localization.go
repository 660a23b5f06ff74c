package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyEnterAPIKey        = "enter_api_key"
	KeyShowAPIKey         = "show_api_key"
	KeyEnterToken         = "enter_token"
	KeyShowToken          = "show_token"
	KeyEnterListID        = "enter_list_id"
	KeySubmitCredentials  = "submit_credentials"
	KeyEnterIdea          = "enter_idea"
	KeySubmitIdea         = "submit_idea"
	KeyStatusQueued       = "status_queued"
	KeyStatusSending      = "status_sending"
	KeyStatusCreated      = "status_created"
	KeyStatusFailed       = "status_failed"
	KeyStatusCancelled    = "status_cancelled"
	KeySubmitRejected     = "submit_rejected"
	KeyOpenCard           = "open_card"
	KeyRequestTimeout     = "request_timeout"
	KeyMaxParallel        = "max_parallel"
	KeyShowStatusMessages = "show_status_messages"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations.
// Status keys are fmt formats taking the idea text (or error) as their argument.
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Hackathon Idea Submitter",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyEnterAPIKey:        "Enter Trello API Key",
		KeyShowAPIKey:         "Show API Key",
		KeyEnterToken:         "Enter Trello Token",
		KeyShowToken:          "Show Token",
		KeyEnterListID:        "Enter Trello List ID",
		KeySubmitCredentials:  "Submit Credentials",
		KeyEnterIdea:          "Enter your idea:",
		KeySubmitIdea:         "Submit Idea",
		KeyStatusQueued:       "Queued: %s",
		KeyStatusSending:      "Sending: %s",
		KeyStatusCreated:      "Card created: %s",
		KeyStatusFailed:       "Submission failed: %s",
		KeyStatusCancelled:    "Submission cancelled: %s",
		KeySubmitRejected:     "Could not submit idea: %s",
		KeyOpenCard:           "Open card",
		KeyRequestTimeout:     "Request Timeout (seconds)",
		KeyMaxParallel:        "Max Parallel Submissions",
		KeyShowStatusMessages: "Show submission status in window",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Отправка идей хакатона",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyEnterAPIKey:        "Введите API-ключ Trello",
		KeyShowAPIKey:         "Показать API-ключ",
		KeyEnterToken:         "Введите токен Trello",
		KeyShowToken:          "Показать токен",
		KeyEnterListID:        "Введите ID списка Trello",
		KeySubmitCredentials:  "Сохранить данные",
		KeyEnterIdea:          "Введите вашу идею:",
		KeySubmitIdea:         "Отправить идею",
		KeyStatusQueued:       "В очереди: %s",
		KeyStatusSending:      "Отправка: %s",
		KeyStatusCreated:      "Карточка создана: %s",
		KeyStatusFailed:       "Ошибка отправки: %s",
		KeyStatusCancelled:    "Отправка отменена: %s",
		KeySubmitRejected:     "Не удалось отправить идею: %s",
		KeyOpenCard:           "Открыть карточку",
		KeyRequestTimeout:     "Тайм-аут запроса (секунды)",
		KeyMaxParallel:        "Макс. параллельных отправок",
		KeyShowStatusMessages: "Показывать статус отправки в окне",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Envio de Ideias do Hackathon",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyEnterAPIKey:        "Digite a chave de API do Trello",
		KeyShowAPIKey:         "Mostrar chave de API",
		KeyEnterToken:         "Digite o token do Trello",
		KeyShowToken:          "Mostrar token",
		KeyEnterListID:        "Digite o ID da lista do Trello",
		KeySubmitCredentials:  "Enviar credenciais",
		KeyEnterIdea:          "Digite sua ideia:",
		KeySubmitIdea:         "Enviar ideia",
		KeyStatusQueued:       "Na fila: %s",
		KeyStatusSending:      "Enviando: %s",
		KeyStatusCreated:      "Cartão criado: %s",
		KeyStatusFailed:       "Falha no envio: %s",
		KeyStatusCancelled:    "Envio cancelado: %s",
		KeySubmitRejected:     "Não foi possível enviar a ideia: %s",
		KeyOpenCard:           "Abrir cartão",
		KeyRequestTimeout:     "Tempo limite da requisição (segundos)",
		KeyMaxParallel:        "Máx. envios paralelos",
		KeyShowStatusMessages: "Mostrar status do envio na janela",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
	}
}
