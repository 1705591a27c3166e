package upgradecmd

import (
	"io"

	"github.com/cheggaaa/pb/v3"
	"github.com/hashicorp/go-getter"
)

type progressBar struct{}

var defaultProgressBar getter.ProgressTracker = &progressBar{}

func (p *progressBar) TrackProgress(src string, currentSize, totalSize int64, stream io.ReadCloser) io.ReadCloser {
	bar := pb.Full.Start64(totalSize)
	bar.Set(pb.Bytes, true)
	bar.SetCurrent(currentSize)
	return bar.NewProxyReader(stream)
}
