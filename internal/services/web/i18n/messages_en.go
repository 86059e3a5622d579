package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Gallery page
	message.SetString(lang, "gallery.title", "%s")
	message.SetString(lang, "gallery.sidebar.heading", "Categories")
	message.SetString(lang, "gallery.upload.hint", "Drag or click to upload")
	message.SetString(lang, "gallery.delete.label", "Delete %s")
	message.SetString(lang, "gallery.empty", "No categories yet.")

	// Add category form
	message.SetString(lang, "gallery.add_category.open", "Add category")
	message.SetString(lang, "gallery.add_category.chinese", "Chinese label")
	message.SetString(lang, "gallery.add_category.english", "English key")
	message.SetString(lang, "gallery.add_category.submit", "Add")
	message.SetString(lang, "gallery.add_category.cancel", "Cancel")
	message.SetString(lang, "gallery.add_category.required", "Both names are required.")

	// Language switcher
	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "nav.lang_zh", "中文")

	// Error pages
	message.SetString(lang, "web.error.page_title_not_found", "Not found")
	message.SetString(lang, "web.error.page_title_unavailable", "Gallery unavailable")
	message.SetString(lang, "web.error.page_title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.title_not_found", "Page not found")
	message.SetString(lang, "web.error.title_unavailable", "The gallery is unavailable")
	message.SetString(lang, "web.error.title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.message_not_found", "The page you are looking for does not exist.")
	message.SetString(lang, "web.error.message_unavailable", "The meme backend could not be reached. Try again shortly.")
	message.SetString(lang, "web.error.message_server_error", "An unexpected error occurred.")
	message.SetString(lang, "web.error.action_back_home", "Back to gallery")
	message.SetString(lang, "error.web.gallery.backend_unavailable", "The meme backend could not be reached.")
}
