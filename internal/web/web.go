// Package web 内置的聊天页面与管理页面
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte

//go:embed admin.html
var AdminHTML []byte

//go:embed static/script.js
var ScriptJS []byte
