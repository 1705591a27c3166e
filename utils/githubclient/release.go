package githubclient

import (
	"context"
	"path"
	"strings"

	"github.com/docker/go-units"
	"github.com/google/go-github/v71/github"
	"github.com/pubgo/funk/v2/errors"
	"github.com/samber/lo"
)

var knownOS = []string{"darwin", "linux", "windows"}
var knownArch = []string{"amd64", "arm64", "386"}

// Asset is one downloadable file of a release, with the os/arch parsed
// out of the asset file name.
type Asset struct {
	Name string
	File string
	OS   string
	Arch string
	Size int64
	URL  string
}

func (a Asset) IsChecksumFile() bool {
	name := strings.ToLower(a.File)
	return strings.Contains(name, "checksum") || strings.HasSuffix(name, ".sha256") || strings.HasSuffix(name, ".sha256sum")
}

type Release struct {
	owner string
	repo  string
	cli   *github.Client
}

// NewPublicRelease creates an unauthenticated client for a public repo.
func NewPublicRelease(owner string, repo string) *Release {
	return &Release{owner: owner, repo: repo, cli: github.NewClient(nil)}
}

func (r *Release) List(ctx context.Context) ([]*github.RepositoryRelease, error) {
	releases, _, err := r.cli.Repositories.ListReleases(ctx, r.owner, r.repo, &github.ListOptions{PerPage: 100})
	if err != nil {
		return nil, errors.WrapCaller(err)
	}
	return releases, nil
}

func GetAssets(r *github.RepositoryRelease) []Asset {
	return lo.Map(r.Assets, func(item *github.ReleaseAsset, index int) Asset {
		osName, archName := detect(item.GetName())
		return Asset{
			Name: r.GetTagName(),
			File: item.GetName(),
			OS:   osName,
			Arch: archName,
			Size: int64(item.GetSize()),
			URL:  item.GetBrowserDownloadURL(),
		}
	})
}

func GetAssetList(releases []*github.RepositoryRelease) []Asset {
	return lo.FlatMap(releases, func(item *github.RepositoryRelease, index int) []Asset {
		return GetAssets(item)
	})
}

func GetSizeFormat(size int64) string {
	return units.HumanSize(float64(size))
}

func detect(file string) (osName string, archName string) {
	name := strings.ToLower(file)
	name = strings.TrimSuffix(name, path.Ext(name))
	for _, o := range knownOS {
		if strings.Contains(name, o) {
			osName = o
			break
		}
	}
	for _, a := range knownArch {
		if strings.Contains(name, a) {
			archName = a
			break
		}
	}
	return
}
