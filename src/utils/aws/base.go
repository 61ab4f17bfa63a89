package aws_handler

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// AWSHandler bundles the AWS service clients the tracker needs. Only
// Secrets Manager is used today, for the database password.
type AWSHandler struct {
	SecretManager *SecretManager
}

func NewAWSHandler(region string) (*AWSHandler, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region)},
	)
	if err != nil {
		return nil, err
	}

	svc := secretsmanager.New(sess)

	return &AWSHandler{
		SecretManager: NewSecretManager(svc),
	}, nil
}
