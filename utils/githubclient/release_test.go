package githubclient

import (
	"testing"

	"github.com/google/go-github/v71/github"
	"github.com/stretchr/testify/assert"
)

func release(tag string, files ...string) *github.RepositoryRelease {
	r := &github.RepositoryRelease{TagName: github.Ptr(tag)}
	for _, f := range files {
		r.Assets = append(r.Assets, &github.ReleaseAsset{
			Name:               github.Ptr(f),
			Size:               github.Ptr(1024),
			BrowserDownloadURL: github.Ptr("https://example.com/" + f),
		})
	}
	return r
}

func TestGetAssets(t *testing.T) {
	assets := GetAssets(release("v1.2.0",
		"promptrun_linux_amd64.tar.gz",
		"promptrun_darwin_arm64.tar.gz",
		"checksums.txt",
	))
	assert.Len(t, assets, 3)

	assert.Equal(t, "v1.2.0", assets[0].Name)
	assert.Equal(t, "linux", assets[0].OS)
	assert.Equal(t, "amd64", assets[0].Arch)
	assert.Equal(t, "https://example.com/promptrun_linux_amd64.tar.gz", assets[0].URL)

	assert.Equal(t, "darwin", assets[1].OS)
	assert.Equal(t, "arm64", assets[1].Arch)

	assert.True(t, assets[2].IsChecksumFile())
	assert.False(t, assets[0].IsChecksumFile())
}

func TestGetAssetList(t *testing.T) {
	list := GetAssetList([]*github.RepositoryRelease{
		release("v1.0.0", "promptrun_linux_amd64.tar.gz"),
		release("v1.1.0", "promptrun_windows_386.zip"),
	})
	assert.Len(t, list, 2)
	assert.Equal(t, "v1.0.0", list[0].Name)
	assert.Equal(t, "windows", list[1].OS)
	assert.Equal(t, "386", list[1].Arch)
}

func TestGetSizeFormat(t *testing.T) {
	assert.Equal(t, "1.049MB", GetSizeFormat(1048576))
}
