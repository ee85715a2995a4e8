// Package embedded 提供数据表的统一访问接口
//
// 默认使用编译期嵌入的 data 包，调用 Init() 可以替换为任意 fs.FS
// （例如命令行 -data 参数指定的目录），用于加载修改过的数据表。
// 所有路径必须以 "data/" 开头。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/decker502/pvzemu/data"
)

var (
	mu         sync.RWMutex
	dataFS     fs.FS = data.FS
	overridden bool
)

// Init 替换数据源
// 传入 nil 时恢复为内置数据
func Init(fsys fs.FS) {
	mu.Lock()
	defer mu.Unlock()
	if fsys == nil {
		dataFS = data.FS
		overridden = false
		return
	}
	dataFS = fsys
	overridden = true
}

// IsOverridden 返回数据源是否已被 Init 替换
func IsOverridden() bool {
	mu.RLock()
	defer mu.RUnlock()
	return overridden
}

// resolve 标准化路径并去掉 "data/" 前缀
func resolve(path string) (fs.FS, string, error) {
	// 标准化路径分隔符为正斜杠（fs.FS 使用正斜杠）
	path = filepath.ToSlash(path)

	// 移除可能的 "./" 前缀
	path = strings.TrimPrefix(path, "./")

	if !strings.HasPrefix(path, "data/") {
		return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}

	mu.RLock()
	fsys := dataFS
	mu.RUnlock()
	return fsys, strings.TrimPrefix(path, "data/"), nil
}

// Open 打开数据文件
func Open(path string) (fs.File, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 读取数据文件内容
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 匹配数据文件，返回的路径带 "data/" 前缀
func Glob(pattern string) ([]string, error) {
	fsys, name, err := resolve(pattern)
	if err != nil {
		return nil, err
	}
	matches, err := fs.Glob(fsys, name)
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = "data/" + m
	}
	return matches, nil
}
