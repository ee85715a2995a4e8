package game

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ErrReplayNotFound 录像不存在
var ErrReplayNotFound = errors.New("replay not found")

// 存储路径常量
const (
	replayObject = "replays"
	replayIndex  = "index"
)

// ReplayStore 录像库
//
// 录像以 YAML 编码保存为 gdata 对象属性，属性名即录像名。
// gdataManager 为 nil 时退化为仅内存存储，进程退出后丢失。
type ReplayStore struct {
	gdataManager *gdata.Manager
	memory       map[string][]byte
}

// NewReplayStore 创建录像库
//
// 参数:
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式，仅内存）
func NewReplayStore(gdataManager *gdata.Manager) *ReplayStore {
	return &ReplayStore{
		gdataManager: gdataManager,
		memory:       make(map[string][]byte),
	}
}

// OpenReplayStore 以应用名打开 gdata 存储
//
// gdata 初始化失败不是致命错误：返回降级的内存录像库，同时返回错误供调用方记录。
func OpenReplayStore(appName string) (*ReplayStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[ReplayStore] Warning: Failed to open gdata storage: %v (memory only)", err)
		return NewReplayStore(nil), fmt.Errorf("failed to open replay storage: %w", err)
	}
	return NewReplayStore(m), nil
}

// Persistent 是否写入磁盘
func (rs *ReplayStore) Persistent() bool {
	return rs.gdataManager != nil
}

// Save 保存录像，同名录像被覆盖
func (rs *ReplayStore) Save(name string, rec *Recording) error {
	if name == "" || name == replayIndex {
		return fmt.Errorf("invalid replay name %q", name)
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal replay: %w", err)
	}

	if rs.gdataManager == nil {
		rs.memory[name] = data
		return nil
	}

	if err := rs.gdataManager.SaveObjectProp(replayObject, name, data); err != nil {
		return fmt.Errorf("failed to save replay %s: %w", name, err)
	}

	names, err := rs.List()
	if err != nil {
		return err
	}
	if !slices.Contains(names, name) {
		names = append(names, name)
		slices.Sort(names)
		if err := rs.saveIndex(names); err != nil {
			return err
		}
	}
	return nil
}

// Load 读取录像
//
// 返回:
//   - error: 录像不存在时返回 ErrReplayNotFound
func (rs *ReplayStore) Load(name string) (*Recording, error) {
	var data []byte
	if rs.gdataManager == nil {
		d, ok := rs.memory[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrReplayNotFound, name)
		}
		data = d
	} else {
		if !rs.gdataManager.ObjectPropExists(replayObject, name) {
			return nil, fmt.Errorf("%w: %s", ErrReplayNotFound, name)
		}
		d, err := rs.gdataManager.LoadObjectProp(replayObject, name)
		if err != nil {
			return nil, fmt.Errorf("failed to load replay %s: %w", name, err)
		}
		data = d
	}

	var rec Recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal replay %s: %w", name, err)
	}
	return &rec, nil
}

// List 返回按名称排序的全部录像名
func (rs *ReplayStore) List() ([]string, error) {
	if rs.gdataManager == nil {
		names := make([]string, 0, len(rs.memory))
		for name := range rs.memory {
			names = append(names, name)
		}
		slices.Sort(names)
		return names, nil
	}

	if !rs.gdataManager.ObjectPropExists(replayObject, replayIndex) {
		return []string{}, nil
	}
	data, err := rs.gdataManager.LoadObjectProp(replayObject, replayIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to load replay index: %w", err)
	}
	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("failed to unmarshal replay index: %w", err)
	}
	return names, nil
}

func (rs *ReplayStore) saveIndex(names []string) error {
	data, err := yaml.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to marshal replay index: %w", err)
	}
	if err := rs.gdataManager.SaveObjectProp(replayObject, replayIndex, data); err != nil {
		return fmt.Errorf("failed to save replay index: %w", err)
	}
	return nil
}
