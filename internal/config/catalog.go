// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadCareerCatalog reads a career to course-ID mapping from a YAML file.
//
// The file maps career names to lists of course IDs:
//
//	careers:
//	  Desenvolvedor Backend: [10054, 10055, 10056]
//	  Cientista de Dados: [10074, 10075]
func LoadCareerCatalog(path string) (map[string][]int64, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load career catalog %s: %w", path, err)
	}

	var doc struct {
		Careers map[string][]int64 `koanf:"careers"`
	}
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal career catalog %s: %w", path, err)
	}
	if len(doc.Careers) == 0 {
		return nil, fmt.Errorf("career catalog %s defines no careers", path)
	}

	return doc.Careers, nil
}
