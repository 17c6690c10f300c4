package handlers

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"magazine/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// uploadConcurrency bounds how many image uploads run at once for a single
// post submission. Order of the result slice always matches the order the
// files were staged in, regardless of completion order.
const uploadConcurrency = 2

// uploadPostImages pushes each staged file to Cloudinary and returns the
// ordered image references for the post document. links is positional: the
// i-th link belongs to the i-th file, empty when the image has no outbound
// link.
func uploadPostImages(ctx context.Context, files []*multipart.FileHeader, links []string) ([]models.Image, error) {
	cld, err := cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		return nil, fmt.Errorf("cloudinary configuration error: %w", err)
	}

	batch := time.Now().Unix()
	images := make([]models.Image, len(files))
	errs := make([]error, len(files))

	semaphore := make(chan struct{}, uploadConcurrency)
	var wg sync.WaitGroup

	for i, file := range files {
		wg.Add(1)
		go func(i int, file *multipart.FileHeader) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}
			defer func() { <-semaphore }()

			src, err := file.Open()
			if err != nil {
				errs[i] = fmt.Errorf("open %s: %w", file.Filename, err)
				return
			}
			defer src.Close()

			result, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
				Folder:         "magazine/posts",
				PublicID:       uploadPublicID(batch, i, file.Filename),
				Transformation: "c_limit,w_1600,h_1600,q_auto",
			})
			if err != nil {
				errs[i] = fmt.Errorf("upload %s: %w", file.Filename, err)
				return
			}

			link := ""
			if i < len(links) {
				link = strings.TrimSpace(links[i])
			}

			images[i] = models.Image{
				URL:   result.SecureURL,
				Link:  link,
				Order: i,
			}
		}(i, file)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return images, nil
}

// uploadPublicID keys the stored blob by submission timestamp, position and
// the original filename (extension stripped, Cloudinary adds its own).
func uploadPublicID(batch int64, index int, filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	return fmt.Sprintf("%d_%d_%s", batch, index, base)
}
