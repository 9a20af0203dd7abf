package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyURLLabel          = "url_label"
	KeyEnterURL          = "enter_url"
	KeyQuality           = "quality"
	KeyFormat            = "format"
	KeyOutputDirectory   = "output_directory"
	KeyBrowse            = "browse"
	KeyDownload          = "download"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySuccess           = "success"
	KeySettingsSaved     = "settings_saved"
	KeyTranscodeAudio    = "transcode_audio"
	KeyRevealOnComplete  = "reveal_on_complete"
	KeyFFmpegMissing     = "ffmpeg_missing"
	KeyStatusResolving   = "status_resolving"
	KeyStatusDownloading = "status_downloading"
	KeyStatusConverting  = "status_converting"
	KeyStatusCompleted   = "status_completed"
	KeyStatusFailed      = "status_failed"
	KeyPlaylistTitle     = "playlist_title"
	KeyPlaylistConfirm   = "playlist_confirm"
	KeyParsingPlaylist   = "parsing_playlist"
	KeyPlaylistFinished  = "playlist_finished"
	KeyPlaylistFailures  = "playlist_failures"
	KeyErrEmptyURL       = "err_empty_url"
	KeyErrEmptyOutputDir = "err_empty_output_dir"
	KeyErrNoStream       = "err_no_stream"
	KeyErrLibrary        = "err_library"
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

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YouTube Video Downloader Pro",
		KeyURLLabel:          "Enter YouTube Video URL:",
		KeyEnterURL:          "Example: https://www.youtube.com/watch?v=...",
		KeyQuality:           "Video Quality:",
		KeyFormat:            "Download Format:",
		KeyOutputDirectory:   "Download Location:",
		KeyBrowse:            "Browse",
		KeyDownload:          "Download Video",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySuccess:           "Success",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyTranscodeAudio:    "Convert audio to real MP3 (ffmpeg)",
		KeyRevealOnComplete:  "Reveal file when done",
		KeyFFmpegMissing:     "ffmpeg was not found, MP3 downloads keep the original audio",
		KeyStatusResolving:   "Fetching video info...",
		KeyStatusDownloading: "Downloading: %s...",
		KeyStatusConverting:  "Converting to MP3: %s...",
		KeyStatusCompleted:   "Download completed successfully!",
		KeyStatusFailed:      "Download failed",
		KeyPlaylistTitle:     "Playlist",
		KeyPlaylistConfirm:   "This link belongs to a playlist. Download every video of the playlist?",
		KeyParsingPlaylist:   "Reading playlist...",
		KeyPlaylistFinished:  "Playlist finished: %d downloaded, %d failed",
		KeyPlaylistFailures:  "Failed videos:",
		KeyErrEmptyURL:       "Please enter a YouTube URL",
		KeyErrEmptyOutputDir: "Please select an output directory",
		KeyErrNoStream:       "No suitable stream found",
		KeyErrLibrary:        "An error occurred: %s",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YouTube Загрузчик Pro",
		KeyURLLabel:          "Введите URL видео YouTube:",
		KeyEnterURL:          "Пример: https://www.youtube.com/watch?v=...",
		KeyQuality:           "Качество видео:",
		KeyFormat:            "Формат:",
		KeyOutputDirectory:   "Папка загрузки:",
		KeyBrowse:            "Обзор",
		KeyDownload:          "Скачать видео",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySuccess:           "Готово",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyTranscodeAudio:    "Конвертировать аудио в MP3 (ffmpeg)",
		KeyRevealOnComplete:  "Показать файл после загрузки",
		KeyFFmpegMissing:     "ffmpeg не найден, MP3 сохраняется в исходном аудиоформате",
		KeyStatusResolving:   "Получение информации о видео...",
		KeyStatusDownloading: "Загрузка: %s...",
		KeyStatusConverting:  "Конвертация в MP3: %s...",
		KeyStatusCompleted:   "Загрузка успешно завершена!",
		KeyStatusFailed:      "Ошибка загрузки",
		KeyPlaylistTitle:     "Плейлист",
		KeyPlaylistConfirm:   "Ссылка относится к плейлисту. Скачать все видео плейлиста?",
		KeyParsingPlaylist:   "Чтение плейлиста...",
		KeyPlaylistFinished:  "Плейлист завершён: скачано %d, ошибок %d",
		KeyPlaylistFailures:  "Не удалось скачать:",
		KeyErrEmptyURL:       "Введите URL видео YouTube",
		KeyErrEmptyOutputDir: "Выберите папку для загрузки",
		KeyErrNoStream:       "Подходящий поток не найден",
		KeyErrLibrary:        "Произошла ошибка: %s",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YouTube Video Downloader Pro",
		KeyURLLabel:          "Digite a URL do vídeo do YouTube:",
		KeyEnterURL:          "Exemplo: https://www.youtube.com/watch?v=...",
		KeyQuality:           "Qualidade do vídeo:",
		KeyFormat:            "Formato:",
		KeyOutputDirectory:   "Local de download:",
		KeyBrowse:            "Navegar",
		KeyDownload:          "Baixar vídeo",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySuccess:           "Sucesso",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyTranscodeAudio:    "Converter áudio para MP3 (ffmpeg)",
		KeyRevealOnComplete:  "Mostrar arquivo ao concluir",
		KeyFFmpegMissing:     "ffmpeg não encontrado, o MP3 mantém o áudio original",
		KeyStatusResolving:   "Obtendo informações do vídeo...",
		KeyStatusDownloading: "Baixando: %s...",
		KeyStatusConverting:  "Convertendo para MP3: %s...",
		KeyStatusCompleted:   "Download concluído com sucesso!",
		KeyStatusFailed:      "Falha no download",
		KeyPlaylistTitle:     "Playlist",
		KeyPlaylistConfirm:   "Este link pertence a uma playlist. Baixar todos os vídeos da playlist?",
		KeyParsingPlaylist:   "Lendo playlist...",
		KeyPlaylistFinished:  "Playlist concluída: %d baixados, %d com falha",
		KeyPlaylistFailures:  "Vídeos com falha:",
		KeyErrEmptyURL:       "Digite uma URL do YouTube",
		KeyErrEmptyOutputDir: "Selecione uma pasta de download",
		KeyErrNoStream:       "Nenhum stream adequado encontrado",
		KeyErrLibrary:        "Ocorreu um erro: %s",
	}
}
