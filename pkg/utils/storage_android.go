//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 确保 Android 上的成绩目录存在并可写
//
// gdata 在 Android 上把数据写到 /data/data/{package}/ 下，但不会创建子目录，
// 所以必须在打开存储之前调用。
func EnsureStorageDir() error {
	dir := GetStoragePath()
	if dir == "" {
		return fmt.Errorf("cannot detect android package name")
	}
	recordsDir := filepath.Join(dir, "records")
	if err := os.MkdirAll(recordsDir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", recordsDir, err)
	}

	probe := filepath.Join(recordsDir, ".probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("%s is not writable: %w", recordsDir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 返回应用私有目录，无法识别包名时返回空字符串
func GetStoragePath() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline 以 NUL 分隔，第一个字段就是包名
	pkg, _, _ := strings.Cut(string(data), "\x00")
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}
