// Package data 嵌入静态数据表
//
// //go:embed 只能嵌入当前包目录及其子目录的文件，
// 因此嵌入声明放在数据目录本身，通过 pkg/embedded 统一访问。
package data

import "embed"

// FS 内置数据表（动画帧数据、植物/僵尸属性）
//
//go:embed reanim/*.yaml stats/*.yaml
var FS embed.FS
