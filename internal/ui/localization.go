package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeySelectFolder         = "select_folder"
	KeySettings             = "settings"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeyRevealCSV            = "reveal_csv"
	KeyProcessingNotStarted = "processing_not_started"
	KeyProcessingRunning    = "processing_running"
	KeyProcessingCompleted  = "processing_completed"
	KeyCloseToExit          = "close_to_exit"
	KeyProcessingFailed     = "processing_failed"
	KeySettingsSaved        = "settings_saved"
	KeyAPIToken             = "api_token"
	KeyAPIEndpoint          = "api_endpoint"
	KeyKeywordLanguage      = "keyword_language"
	KeyMaxKeywords          = "max_keywords"
	KeyUseExifContext       = "use_exif_context"
	KeyErrorOpeningFile     = "error_opening_file"
	KeyRunAlreadyActive     = "run_already_active"
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "Image Keywording Tool",
		KeySelectFolder:         "Select Folder",
		KeySettings:             "Settings",
		KeySave:                 "Save",
		KeyCancel:               "Cancel",
		KeyRevealCSV:            "Reveal CSV",
		KeyProcessingNotStarted: "Processing Not Started",
		KeyProcessingRunning:    "Processing Running...",
		KeyProcessingCompleted:  "Processing Completed",
		KeyCloseToExit:          "Close Window to Exit",
		KeyProcessingFailed:     "Processing Failed",
		KeySettingsSaved:        "Settings saved",
		KeyAPIToken:             "API Token:",
		KeyAPIEndpoint:          "API Endpoint:",
		KeyKeywordLanguage:      "Keyword Language:",
		KeyMaxKeywords:          "Max Keywords:",
		KeyUseExifContext:       "Append EXIF description to context",
		KeyErrorOpeningFile:     "Error opening file",
		KeyRunAlreadyActive:     "A run is already in progress",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:             "Инструмент подбора ключевых слов",
		KeySelectFolder:         "Выбрать папку",
		KeySettings:             "Настройки",
		KeySave:                 "Сохранить",
		KeyCancel:               "Отмена",
		KeyRevealCSV:            "Показать CSV",
		KeyProcessingNotStarted: "Обработка не начата",
		KeyProcessingRunning:    "Идёт обработка...",
		KeyProcessingCompleted:  "Обработка завершена",
		KeyCloseToExit:          "Закройте окно для выхода",
		KeyProcessingFailed:     "Ошибка обработки",
		KeySettingsSaved:        "Настройки сохранены",
		KeyAPIToken:             "API токен:",
		KeyAPIEndpoint:          "Адрес API:",
		KeyKeywordLanguage:      "Язык ключевых слов:",
		KeyMaxKeywords:          "Макс. ключевых слов:",
		KeyUseExifContext:       "Добавлять описание EXIF к контексту",
		KeyErrorOpeningFile:     "Ошибка открытия файла",
		KeyRunAlreadyActive:     "Обработка уже выполняется",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:             "Ferramenta de Palavras-chave de Imagens",
		KeySelectFolder:         "Selecionar Pasta",
		KeySettings:             "Configurações",
		KeySave:                 "Salvar",
		KeyCancel:               "Cancelar",
		KeyRevealCSV:            "Mostrar CSV",
		KeyProcessingNotStarted: "Processamento Não Iniciado",
		KeyProcessingRunning:    "Processamento em Andamento...",
		KeyProcessingCompleted:  "Processamento Concluído",
		KeyCloseToExit:          "Feche a Janela para Sair",
		KeyProcessingFailed:     "Falha no Processamento",
		KeySettingsSaved:        "Configurações salvas",
		KeyAPIToken:             "Token da API:",
		KeyAPIEndpoint:          "Endpoint da API:",
		KeyKeywordLanguage:      "Idioma das palavras-chave:",
		KeyMaxKeywords:          "Máx. de palavras-chave:",
		KeyUseExifContext:       "Anexar descrição EXIF ao contexto",
		KeyErrorOpeningFile:     "Erro ao abrir arquivo",
		KeyRunAlreadyActive:     "Um processamento já está em andamento",
	}
}
