// Package i18n resolves the UI language once at startup and serves the
// static translation table. The tool's home audience is Chinese, so
// every user-facing string ships with a zh translation; English keys
// are the fallback.
package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Run": {
		"zh": "立即运行",
	},
	"Run now": {
		"zh": "立即执行",
	},
	"Cancel": {
		"zh": "取消",
	},
	"Hide banner": {
		"zh": "隐藏横幅",
	},
	"About to run whiteboard auto login": {
		"zh": "即将运行希沃白板自动登录",
	},
	"Continuing in %d seconds": {
		"zh": "将在 %d 秒后继续执行",
	},
	"Warning banner": {
		"zh": "警示横幅",
	},
	"Show banner while running": {
		"zh": "运行时显示横幅",
	},
	"Banner text": {
		"zh": "横幅文字",
	},
	"Text font": {
		"zh": "文字字体",
	},
	"Preferred font family": {
		"zh": "首选字体",
	},
	"Scroll speed": {
		"zh": "滚动速度",
	},
	"Vertical offset": {
		"zh": "垂直偏移",
	},
	"Frame rate": {
		"zh": "帧率",
	},
	"Background color": {
		"zh": "背景颜色",
	},
	"Stripe color": {
		"zh": "条纹颜色",
	},
	"Text color": {
		"zh": "文字颜色",
	},
	"On": {
		"zh": "开",
	},
	"Off": {
		"zh": "关",
	},
	"About EasiAuto": {
		"zh": "关于 EasiAuto",
	},
	"Close": {
		"zh": "关闭",
	},
}

func init() {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("EASIAUTO_LANG")); forcedLang != "" {
		log.Printf("EASIAUTO_LANG is set to: '%s'", forcedLang)
		lang = forcedLang
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}

	if len(userLocales) > 0 {
		loc := userLocales[0]
		log.Printf("Detected user locale: %s", loc)
		if strings.HasPrefix(loc, "zh") {
			lang = "zh"
		} else {
			lang = "en"
		}
	} else {
		lang = "en"
	}
	log.Printf("Language set to: %s", lang)
}

// T returns the translation of key for the active language, or the key
// itself when none exists.
func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

// GetLang returns the active language code.
func GetLang() string {
	return lang
}
