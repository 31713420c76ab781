package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyVideoTitle       = "video_title"
	KeyAudioTitle       = "audio_title"
	KeyDownload         = "download"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeyPaste            = "paste"
	KeyEnterURL         = "enter_url"
	KeyQuality          = "quality"
	KeyFormat           = "format"
	KeySaveTo           = "save_to"
	KeyWholePlaylist    = "whole_playlist"
	KeyDownloadComplete = "download_complete"
	KeyDownloadFailed   = "download_failed"
	KeyInvalidURL       = "invalid_url"
	KeyPleaseEnterURL   = "please_enter_url"
	KeyBusy             = "busy"
	KeyPlaylistInfo     = "playlist_info"
	KeyLanguage         = "language"
	KeyClipboardEmpty   = "clipboard_empty"
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyVideoTitle:       "YT Video Downloader",
		KeyAudioTitle:       "YT Audio Downloader",
		KeyDownload:         "Download",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeyPaste:            "Paste",
		KeyEnterURL:         "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeyQuality:          "Quality",
		KeyFormat:           "Format",
		KeySaveTo:           "Save to",
		KeyWholePlaylist:    "Download whole playlist",
		KeyDownloadComplete: "Download completed",
		KeyDownloadFailed:   "Download failed",
		KeyInvalidURL:       "Invalid URL",
		KeyPleaseEnterURL:   "Please enter a URL",
		KeyBusy:             "A download is already in progress",
		KeyPlaylistInfo:     "Playlist",
		KeyLanguage:         "Language",
		KeyClipboardEmpty:   "No text found in clipboard",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyVideoTitle:       "YT Видео Загрузчик",
		KeyAudioTitle:       "YT Аудио Загрузчик",
		KeyDownload:         "Скачать",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeyPaste:            "Вставить",
		KeyEnterURL:         "Введите URL YouTube (https://youtube.com/watch?v=...)",
		KeyQuality:          "Качество",
		KeyFormat:           "Формат",
		KeySaveTo:           "Сохранить в",
		KeyWholePlaylist:    "Скачать весь плейлист",
		KeyDownloadComplete: "Загрузка завершена",
		KeyDownloadFailed:   "Ошибка загрузки",
		KeyInvalidURL:       "Неверный URL",
		KeyPleaseEnterURL:   "Пожалуйста, введите URL",
		KeyBusy:             "Загрузка уже выполняется",
		KeyPlaylistInfo:     "Плейлист",
		KeyLanguage:         "Язык",
		KeyClipboardEmpty:   "В буфере обмена нет текста",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyVideoTitle:       "YT Video Downloader",
		KeyAudioTitle:       "YT Audio Downloader",
		KeyDownload:         "Baixar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeyPaste:            "Colar",
		KeyEnterURL:         "Digite URL do YouTube (https://youtube.com/watch?v=...)",
		KeyQuality:          "Qualidade",
		KeyFormat:           "Formato",
		KeySaveTo:           "Salvar em",
		KeyWholePlaylist:    "Baixar playlist inteira",
		KeyDownloadComplete: "Download concluído",
		KeyDownloadFailed:   "Falha no download",
		KeyInvalidURL:       "URL inválida",
		KeyPleaseEnterURL:   "Por favor, digite uma URL",
		KeyBusy:             "Um download já está em andamento",
		KeyPlaylistInfo:     "Playlist",
		KeyLanguage:         "Idioma",
		KeyClipboardEmpty:   "Nenhum texto na área de transferência",
	}
}
