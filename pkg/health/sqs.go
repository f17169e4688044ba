package health

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSAttributesAPI is the slice of the SQS client the checker needs.
type SQSAttributesAPI interface {
	GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error)
}

// SQSChecker verifies the webhook queue exists and is reachable with the configured credentials.
type SQSChecker struct {
	client   SQSAttributesAPI
	queueURL string
}

func NewSQSChecker(client SQSAttributesAPI, queueURL string) *SQSChecker {
	return &SQSChecker{client: client, queueURL: queueURL}
}

func (c *SQSChecker) Name() string {
	return "sqs"
}

func (c *SQSChecker) Check(ctx context.Context) Result {
	out, err := c.client.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(c.queueURL),
		AttributeNames: []types.QueueAttributeName{types.QueueAttributeNameApproximateNumberOfMessages},
	})
	if err != nil {
		return Down(err)
	}
	return Result{Status: StatusUp, Message: "approximate messages: " + out.Attributes[string(types.QueueAttributeNameApproximateNumberOfMessages)]}
}
