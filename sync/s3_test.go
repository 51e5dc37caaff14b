package sync

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureClient records outgoing S3 requests and answers each with 200 OK.
type captureClient struct {
	requests []*http.Request
}

func (c *captureClient) Do(req *http.Request) (*http.Response, error) {
	c.requests = append(c.requests, req)
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Etag": []string{`"d41d8cd98f00b204e9800998ecf8427e"`}},
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil
}

func TestS3Destination_Put(t *testing.T) {
	hc := &captureClient{}
	client := s3.NewFromConfig(aws.Config{
		Region:      "ap-northeast-1",
		Credentials: credentials.NewStaticCredentialsProvider("AKIATEST", "secret", ""),
		HTTPClient:  hc,
	})
	d := NewS3Destination(client, "archive", types.StorageClassStandardIa)

	body := "%PDF-1.4"
	err := d.Put(context.Background(), "others/economist/a.pdf",
		strings.NewReader(body), int64(len(body)), "application/pdf")
	require.NoError(t, err)

	require.Len(t, hc.requests, 1)
	req := hc.requests[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/others/economist/a.pdf", req.URL.Path)
	assert.Contains(t, req.URL.Host, "archive")
	assert.Equal(t, "application/pdf", req.Header.Get("Content-Type"))
	assert.Equal(t, string(types.StorageClassStandardIa), req.Header.Get("X-Amz-Storage-Class"))
	assert.Equal(t, "8", req.Header.Get("X-Amz-Meta-Size"))
}
