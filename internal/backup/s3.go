package backup

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/kelseyhightower/envconfig"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/logging"
)

// S3Config configures the object-storage transport. Populated from the
// environment under the HABITTA_S3 prefix (HABITTA_S3_BUCKET and so on).
type S3Config struct {
	Endpoint        string `envconfig:"ENDPOINT"`
	Region          string `envconfig:"REGION" default:"auto"`
	Bucket          string `envconfig:"BUCKET"`
	Prefix          string `envconfig:"PREFIX"`
	AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
}

// S3ConfigFromEnv loads the transport configuration from the environment.
func S3ConfigFromEnv() (S3Config, error) {
	var cfg S3Config
	if err := envconfig.Process("HABITTA_S3", &cfg); err != nil {
		return S3Config{}, err
	}
	if cfg.Bucket == "" {
		return S3Config{}, errors.NewUserError(
			"S3 backup is not configured",
			"Set HABITTA_S3_BUCKET, HABITTA_S3_ACCESS_KEY_ID and HABITTA_S3_SECRET_ACCESS_KEY")
	}
	return cfg, nil
}

// S3 is a backup transport storing the blob in an S3-compatible bucket.
// "Signing in" amounts to verifying the configured static credentials can
// reach the bucket; there is no interactive auth flow.
type S3 struct {
	client *s3.Client
	cfg    S3Config
}

// NewS3 creates the object-storage transport.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	provider := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(provider),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, errors.NewSystemError("failed to load AWS configuration", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3{client: client, cfg: cfg}, nil
}

func (t *S3) objectKey() string {
	return path.Join(t.cfg.Prefix, BackupFileName)
}

// SignIn verifies bucket access with the configured credentials.
func (t *S3) SignIn(ctx context.Context) (Profile, error) {
	_, err := t.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(t.cfg.Bucket)})
	if err != nil {
		return Profile{}, errors.NewSystemErrorWithOp("sign-in", "cannot access backup bucket", err)
	}
	return t.profile(), nil
}

// SignOut is a no-op: static credentials hold no session.
func (t *S3) SignOut(ctx context.Context) error {
	return nil
}

// SignedInUser reports the bucket profile while it is reachable.
func (t *S3) SignedInUser(ctx context.Context) (*Profile, error) {
	_, err := t.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(t.cfg.Bucket)})
	if err != nil {
		return nil, nil
	}
	p := t.profile()
	return &p, nil
}

// Upload stores the blob under the well-known object key.
func (t *S3) Upload(ctx context.Context, data []byte) (FileInfo, error) {
	key := t.objectKey()
	_, err := t.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(t.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String("application/json"),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return FileInfo{}, errors.NewSystemErrorWithOp("upload", "failed to upload backup", err)
	}

	logging.DebugLog("backup uploaded", logging.KeyTransport, "s3", logging.KeyCount, len(data))
	return FileInfo{ID: key, Name: BackupFileName, ModifiedTime: time.Now()}, nil
}

// Latest fetches the backup object, or nil metadata when none exists.
func (t *S3) Latest(ctx context.Context) (*FileInfo, []byte, error) {
	key := t.objectKey()
	out, err := t.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(t.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if stderrors.As(err, &noKey) {
			return nil, nil, nil
		}
		return nil, nil, errors.NewSystemErrorWithOp("fetch", "failed to fetch backup", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, nil, errors.NewSystemErrorWithOp("fetch", "failed to read backup body", err)
	}

	info := FileInfo{ID: key, Name: BackupFileName}
	if out.LastModified != nil {
		info.ModifiedTime = *out.LastModified
	}
	return &info, data, nil
}

func (t *S3) profile() Profile {
	return Profile{Name: t.cfg.Bucket, Email: ""}
}
