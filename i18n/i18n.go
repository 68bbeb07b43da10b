package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	Chinese Locale = "zh"
	English Locale = "en"
)

var (
	supported = []Locale{Chinese, English}
	matcher   = language.NewMatcher([]language.Tag{language.Chinese, language.English})
)

type Key string

const (
	InitSuccess     Key = "init.success"
	InitFail        Key = "init.fail"
	InitUsePost     Key = "init.usePost"
	Configured      Key = "config.configured"
	NotConfigured   Key = "config.notConfigured"
	RequiredFields  Key = "submit.requiredFields"
	InvalidPrice    Key = "submit.invalidPrice"
	TooManyPhotos   Key = "submit.tooManyPhotos"
	InvalidRoomType Key = "submit.invalidRoomType"
	InvalidBody     Key = "submit.invalidBody"
	SubmitFailed    Key = "submit.failed"
	NoFile          Key = "upload.noFile"
	NotAnImage      Key = "upload.notAnImage"
	FileTooLarge    Key = "upload.tooLarge"
	ServerConfig    Key = "upload.serverConfig"
	UploadFailed    Key = "upload.failed"
)

var messages = map[Locale]map[Key]string{
	Chinese: {
		InitSuccess:     "成功初始化房源数据",
		InitFail:        "初始化失败",
		InitUsePost:     "使用 POST 请求来初始化房源数据",
		Configured:      "已配置",
		NotConfigured:   "未配置",
		RequiredFields:  "地址、价格、联系方式为必填项",
		InvalidPrice:    "价格必须是非负数字",
		TooManyPhotos:   "最多只能上传 10 张照片",
		InvalidRoomType: "无效的房型",
		InvalidBody:     "请求格式错误",
		SubmitFailed:    "提交失败",
		NoFile:          "未收到文件",
		NotAnImage:      "只支持图片文件",
		FileTooLarge:    "图片大小不能超过 5MB",
		ServerConfig:    "服务器配置错误",
		UploadFailed:    "上传失败",
	},
	English: {
		InitSuccess:     "Initialized listings successfully",
		InitFail:        "Initialization failed",
		InitUsePost:     "Use POST to initialize listings",
		Configured:      "configured",
		NotConfigured:   "not configured",
		RequiredFields:  "Address, price and contact are required",
		InvalidPrice:    "Price must be a non-negative number",
		TooManyPhotos:   "At most 10 photos can be attached",
		InvalidRoomType: "Unknown room type",
		InvalidBody:     "Malformed request body",
		SubmitFailed:    "Submission failed",
		NoFile:          "No file received",
		NotAnImage:      "Only image files are supported",
		FileTooLarge:    "Images must not exceed 5MB",
		ServerConfig:    "Server configuration error",
		UploadFailed:    "Upload failed",
	},
}

// Negotiate picks the response locale from the locale cookie first, then the
// Accept-Language header. Chinese is the default.
func Negotiate(cookie, acceptLanguage string) Locale {
	if cookie = strings.TrimSpace(cookie); cookie != "" {
		if tag, err := language.Parse(cookie); err == nil {
			return match(tag)
		}
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Chinese
	}
	return match(tags...)
}

func match(tags ...language.Tag) Locale {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Chinese
	}
	return supported[index]
}

func T(locale Locale, key Key) string {
	if msg, ok := messages[locale][key]; ok {
		return msg
	}
	return messages[Chinese][key]
}

// Presence reports whether a setting is filled in without revealing it.
func Presence(locale Locale, value string) string {
	if value == "" {
		return T(locale, NotConfigured)
	}
	return T(locale, Configured)
}
