package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.SimplifiedChinese

	// Gallery page
	message.SetString(lang, "gallery.title", "%s")
	message.SetString(lang, "gallery.sidebar.heading", "分类")
	message.SetString(lang, "gallery.upload.hint", "拖拽或点击上传")
	message.SetString(lang, "gallery.delete.label", "删除 %s")
	message.SetString(lang, "gallery.empty", "暂无分类")

	// Add category form
	message.SetString(lang, "gallery.add_category.open", "添加分类")
	message.SetString(lang, "gallery.add_category.chinese", "中文名")
	message.SetString(lang, "gallery.add_category.english", "英文名")
	message.SetString(lang, "gallery.add_category.submit", "添加")
	message.SetString(lang, "gallery.add_category.cancel", "取消")
	message.SetString(lang, "gallery.add_category.required", "请填写中文名和英文名")

	// Language switcher
	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "nav.lang_zh", "中文")

	// Error pages
	message.SetString(lang, "web.error.page_title_not_found", "页面不存在")
	message.SetString(lang, "web.error.page_title_unavailable", "图库暂不可用")
	message.SetString(lang, "web.error.page_title_server_error", "出错了")
	message.SetString(lang, "web.error.title_not_found", "页面不存在")
	message.SetString(lang, "web.error.title_unavailable", "图库暂不可用")
	message.SetString(lang, "web.error.title_server_error", "出错了")
	message.SetString(lang, "web.error.message_not_found", "你要找的页面不存在。")
	message.SetString(lang, "web.error.message_unavailable", "无法连接表情包后端，请稍后再试。")
	message.SetString(lang, "web.error.message_server_error", "发生了意外错误。")
	message.SetString(lang, "web.error.action_back_home", "返回图库")
	message.SetString(lang, "error.web.gallery.backend_unavailable", "无法连接表情包后端。")
}
