package testutil

import (
	"context"
	"errors"

	"github.com/kombee-technologies/wpsetup/internal/core/ports"
)

// MockSiteAdmin is a mock implementation of ports.SiteAdmin. Calls records
// the name of every invoked operation in order, which tests use to assert
// sequencing.
type MockSiteAdmin struct {
	Calls []string

	DownloadCoreFunc         func(ctx context.Context) error
	WriteConfigFunc          func(ctx context.Context, db ports.DatabaseSettings) error
	CreateDatabaseFunc       func(ctx context.Context) error
	InstallSiteFunc          func(ctx context.Context, install ports.InstallSettings) error
	DeleteContentFunc        func(ctx context.Context, ids []int) error
	CreatePageFunc           func(ctx context.Context, title string) (int, error)
	CreatePostFunc           func(ctx context.Context, title string) (int, error)
	ListPublishedPageIDsFunc func(ctx context.Context) ([]int, error)
	GetOptionFunc            func(ctx context.Context, name string) (string, error)
	UpdateOptionFunc         func(ctx context.Context, name, value string) error
	SetRewriteStructureFunc  func(ctx context.Context, structure string) error
	InstallPluginFunc        func(ctx context.Context, slug string, activate bool) error
	InstallPluginArchiveFunc func(ctx context.Context, path string, activate bool) error
	DeletePluginsFunc        func(ctx context.Context, slugs []string) error
	InstallThemeArchiveFunc  func(ctx context.Context, path string, activate bool) error
	DeleteThemesFunc         func(ctx context.Context, slugs []string) error
	ThemeRootFunc            func(ctx context.Context, slug string) (string, error)
	CreateMenuFunc           func(ctx context.Context, name string) (int, error)
	AssignMenuLocationFunc   func(ctx context.Context, menu, location string) error
	AddPageToMenuFunc        func(ctx context.Context, menu string, pageID int) error
	SetPostMetaFunc          func(ctx context.Context, pageID int, key, value string) error
}

func (m *MockSiteAdmin) record(name string) {
	m.Calls = append(m.Calls, name)
}

func (m *MockSiteAdmin) DownloadCore(ctx context.Context) error {
	m.record("DownloadCore")
	if m.DownloadCoreFunc != nil {
		return m.DownloadCoreFunc(ctx)
	}
	return nil
}

func (m *MockSiteAdmin) WriteConfig(ctx context.Context, db ports.DatabaseSettings) error {
	m.record("WriteConfig")
	if m.WriteConfigFunc != nil {
		return m.WriteConfigFunc(ctx, db)
	}
	return nil
}

func (m *MockSiteAdmin) CreateDatabase(ctx context.Context) error {
	m.record("CreateDatabase")
	if m.CreateDatabaseFunc != nil {
		return m.CreateDatabaseFunc(ctx)
	}
	return nil
}

func (m *MockSiteAdmin) InstallSite(ctx context.Context, install ports.InstallSettings) error {
	m.record("InstallSite")
	if m.InstallSiteFunc != nil {
		return m.InstallSiteFunc(ctx, install)
	}
	return nil
}

func (m *MockSiteAdmin) DeleteContent(ctx context.Context, ids []int) error {
	m.record("DeleteContent")
	if m.DeleteContentFunc != nil {
		return m.DeleteContentFunc(ctx, ids)
	}
	return nil
}

func (m *MockSiteAdmin) CreatePage(ctx context.Context, title string) (int, error) {
	m.record("CreatePage")
	if m.CreatePageFunc != nil {
		return m.CreatePageFunc(ctx, title)
	}
	return 0, errors.New("MockSiteAdmin.CreatePageFunc not implemented")
}

func (m *MockSiteAdmin) CreatePost(ctx context.Context, title string) (int, error) {
	m.record("CreatePost")
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(ctx, title)
	}
	return 0, errors.New("MockSiteAdmin.CreatePostFunc not implemented")
}

func (m *MockSiteAdmin) ListPublishedPageIDs(ctx context.Context) ([]int, error) {
	m.record("ListPublishedPageIDs")
	if m.ListPublishedPageIDsFunc != nil {
		return m.ListPublishedPageIDsFunc(ctx)
	}
	return nil, nil
}

func (m *MockSiteAdmin) GetOption(ctx context.Context, name string) (string, error) {
	m.record("GetOption")
	if m.GetOptionFunc != nil {
		return m.GetOptionFunc(ctx, name)
	}
	return "", nil
}

func (m *MockSiteAdmin) UpdateOption(ctx context.Context, name, value string) error {
	m.record("UpdateOption")
	if m.UpdateOptionFunc != nil {
		return m.UpdateOptionFunc(ctx, name, value)
	}
	return nil
}

func (m *MockSiteAdmin) SetRewriteStructure(ctx context.Context, structure string) error {
	m.record("SetRewriteStructure")
	if m.SetRewriteStructureFunc != nil {
		return m.SetRewriteStructureFunc(ctx, structure)
	}
	return nil
}

func (m *MockSiteAdmin) InstallPlugin(ctx context.Context, slug string, activate bool) error {
	m.record("InstallPlugin")
	if m.InstallPluginFunc != nil {
		return m.InstallPluginFunc(ctx, slug, activate)
	}
	return nil
}

func (m *MockSiteAdmin) InstallPluginArchive(ctx context.Context, path string, activate bool) error {
	m.record("InstallPluginArchive")
	if m.InstallPluginArchiveFunc != nil {
		return m.InstallPluginArchiveFunc(ctx, path, activate)
	}
	return nil
}

func (m *MockSiteAdmin) DeletePlugins(ctx context.Context, slugs []string) error {
	m.record("DeletePlugins")
	if m.DeletePluginsFunc != nil {
		return m.DeletePluginsFunc(ctx, slugs)
	}
	return nil
}

func (m *MockSiteAdmin) InstallThemeArchive(ctx context.Context, path string, activate bool) error {
	m.record("InstallThemeArchive")
	if m.InstallThemeArchiveFunc != nil {
		return m.InstallThemeArchiveFunc(ctx, path, activate)
	}
	return nil
}

func (m *MockSiteAdmin) DeleteThemes(ctx context.Context, slugs []string) error {
	m.record("DeleteThemes")
	if m.DeleteThemesFunc != nil {
		return m.DeleteThemesFunc(ctx, slugs)
	}
	return nil
}

func (m *MockSiteAdmin) ThemeRoot(ctx context.Context, slug string) (string, error) {
	m.record("ThemeRoot")
	if m.ThemeRootFunc != nil {
		return m.ThemeRootFunc(ctx, slug)
	}
	return "", errors.New("MockSiteAdmin.ThemeRootFunc not implemented")
}

func (m *MockSiteAdmin) CreateMenu(ctx context.Context, name string) (int, error) {
	m.record("CreateMenu")
	if m.CreateMenuFunc != nil {
		return m.CreateMenuFunc(ctx, name)
	}
	return 0, errors.New("MockSiteAdmin.CreateMenuFunc not implemented")
}

func (m *MockSiteAdmin) AssignMenuLocation(ctx context.Context, menu, location string) error {
	m.record("AssignMenuLocation")
	if m.AssignMenuLocationFunc != nil {
		return m.AssignMenuLocationFunc(ctx, menu, location)
	}
	return nil
}

func (m *MockSiteAdmin) AddPageToMenu(ctx context.Context, menu string, pageID int) error {
	m.record("AddPageToMenu")
	if m.AddPageToMenuFunc != nil {
		return m.AddPageToMenuFunc(ctx, menu, pageID)
	}
	return nil
}

func (m *MockSiteAdmin) SetPostMeta(ctx context.Context, pageID int, key, value string) error {
	m.record("SetPostMeta")
	if m.SetPostMetaFunc != nil {
		return m.SetPostMetaFunc(ctx, pageID, key, value)
	}
	return nil
}
