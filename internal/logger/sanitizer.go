package logger

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// Sanitizer 負責清理日誌內容
//
// Terminal escape sequences and control characters are removed from logged
// values, since file names may contain them. Home directories are masked.
type Sanitizer struct {
	mu       sync.RWMutex
	patterns []SanitizeRule
}

// SanitizeRule 單一過濾規則
type SanitizeRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// NewSanitizer 建立預設 sanitizer
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		patterns: defaultSanitizeRules(),
	}
}

// defaultSanitizeRules 回傳預設過濾規則，順序有意義
func defaultSanitizeRules() []SanitizeRule {
	return []SanitizeRule{
		// ANSI CSI 與 OSC 序列
		{regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`), ""},
		{regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`), ""},

		// 其餘控制字元（含換行）
		{regexp.MustCompile(`[\x00-\x1f\x7f]`), "?"},

		// Windows 使用者路徑 (支援所有磁碟機與 UNC，不區分大小寫)
		{regexp.MustCompile(`(?i)[A-Z]:\\Users\\[^\\]+`), "***:\\Users\\***"},
		{regexp.MustCompile(`(?i)\\\\[^\\]+\\[^\\]+\\Users\\[^\\]+`), "\\\\***\\***\\Users\\***"},

		// Unix 家目錄
		{regexp.MustCompile(`/home/[^/]+`), "/home/***"},
		{regexp.MustCompile(`/Users/[^/]+`), "/Users/***"},
	}
}

// Sanitize sanitizes a string by applying all patterns
func (s *Sanitizer) Sanitize(input string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.apply(input)
}

func (s *Sanitizer) apply(input string) string {
	result := input
	for _, rule := range s.patterns {
		result = rule.Pattern.ReplaceAllString(result, rule.Replacement)
	}
	return result
}

// SanitizeArgs sanitizes the values of key/value logging arguments. Keys
// are left alone; string, error and Stringer values are cleaned.
func (s *Sanitizer) SanitizeArgs(args []any) []any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(args) == 0 {
		return args
	}

	result := make([]any, len(args))
	copy(result, args)

	for i := 1; i < len(result); i += 2 {
		result[i] = s.sanitizeValue(result[i])
	}

	// 奇數個參數：最後一個為孤立值
	if len(result)%2 == 1 {
		last := len(result) - 1
		result[last] = s.sanitizeValue(result[last])
	}

	return result
}

func (s *Sanitizer) sanitizeValue(v any) any {
	switch val := v.(type) {
	case string:
		return s.apply(val)
	case error:
		return errors.New(s.apply(val.Error()))
	case fmt.Stringer:
		return s.apply(val.String())
	default:
		return v
	}
}

// AddRule 新增自訂過濾規則
func (s *Sanitizer) AddRule(pattern, replacement string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid regex pattern: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.patterns = append(s.patterns, SanitizeRule{
		Pattern:     re,
		Replacement: replacement,
	})
	return nil
}
