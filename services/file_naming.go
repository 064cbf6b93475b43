package services

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"docuvault/models"
)

// splitFileName separates a raw upload name into its stem and
// lower-cased extension ("report.PDF" -> "report", "pdf").
func splitFileName(rawName string) (stem, ext string) {
	dotExt := filepath.Ext(rawName)
	stem = strings.TrimSuffix(rawName, dotExt)
	ext = strings.ToLower(strings.TrimPrefix(dotExt, "."))
	return stem, ext
}

// resolveDisplayName picks a collision-free display name among the
// files already in the folder. "stem.ext" occupies slot 1 and
// "stem(n).ext" occupies slot n+1; the result is the plain name when
// free, otherwise "stem(max).ext" one past the highest occupied slot.
// Non-numeric parenthetical suffixes are ignored, not errors.
func resolveDisplayName(existing []models.File, stem, ext string) string {
	plain := stem + "." + ext
	count := 0

	for _, f := range existing {
		if f.Name == plain {
			if count < 1 {
				count = 1
			}
			continue
		}
		prefix := stem + "("
		suffix := ")." + ext
		if !strings.HasPrefix(f.Name, prefix) || !strings.HasSuffix(f.Name, suffix) {
			continue
		}
		inner := f.Name[len(prefix) : len(f.Name)-len(suffix)]
		n, err := strconv.Atoi(inner)
		if err != nil || n < 0 {
			continue
		}
		if n+1 > count {
			count = n + 1
		}
	}

	if count == 0 {
		return plain
	}
	return fmt.Sprintf("%s(%d).%s", stem, count, ext)
}
