package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile is one named data-source connection from the learnatlas
// profiles file (~/.learnatlas by convention).
type Profile struct {
	Name    string
	DbPath  string
	Catalog string
}

// Registry reads the ini-style profiles file once and serves lookups.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	dbPath := section.Key("db_path").String()
	if dbPath == "" {
		return nil, fmt.Errorf("profile %s has no db_path", name)
	}

	return &Profile{
		Name:    name,
		DbPath:  dbPath,
		Catalog: section.Key("catalog").String(),
	}, nil
}
