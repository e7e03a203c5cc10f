package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	failGet error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet != nil {
		return nil, f.failGet
	}
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("not found")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func TestS3Slot(t *testing.T) {
	runSlotTests(t, NewS3Slot(newFakeS3(), "bucket", "tarif/"))
}

func TestS3SlotObjectKey(t *testing.T) {
	fake := newFakeS3()
	slot := NewS3Slot(fake, "bucket", "tarif/")
	require.NoError(t, slot.Set(context.Background(), "recipes", []byte("[]")))

	assert.Contains(t, fake.objects, "bucket/tarif/recipes.json")
}

func TestS3SlotGetError(t *testing.T) {
	fake := newFakeS3()
	fake.failGet = errors.New("access denied")
	slot := NewS3Slot(fake, "bucket", "")

	_, err := slot.Get(context.Background(), "recipes")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotEmpty)
}
