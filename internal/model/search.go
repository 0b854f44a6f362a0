package model

import (
	"fmt"
	"strings"
)

// SearchCriteria 搜索维度
type SearchCriteria string

const (
	SearchByTitle    SearchCriteria = "title"
	SearchByDirector SearchCriteria = "director"
)

// ParseSearchCriteria 解析逗号分隔的搜索维度，如 "title,director"
func ParseSearchCriteria(by string) ([]SearchCriteria, error) {
	seen := make(map[SearchCriteria]bool)
	var out []SearchCriteria
	for _, part := range strings.Split(by, ",") {
		c := SearchCriteria(strings.ToLower(strings.TrimSpace(part)))
		switch c {
		case SearchByTitle, SearchByDirector:
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidCriteria, part)
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out, nil
}

// DirectorSort 导演作品排序方式
type DirectorSort string

const (
	SortByLikes DirectorSort = "likes"
	SortByYear  DirectorSort = "year"
)

// ParseDirectorSort 校验排序参数
func ParseDirectorSort(sortBy string) (DirectorSort, error) {
	switch s := DirectorSort(sortBy); s {
	case SortByLikes, SortByYear:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSortKey, sortBy)
	}
}
