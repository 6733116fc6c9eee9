package kafka

import "time"

const (
	TopicClaimRequest    = "voucher.claim.req"
	TopicReleaseRequest  = "voucher.release.req"
	TopicRedeemRequest   = "voucher.redeem.req"
	TopicTransferRequest = "voucher.transfer.req"
	TopicListRequest     = "voucher.list.req"

	TopicClaimRetry    = "voucher.claim.retry"
	TopicReleaseRetry  = "voucher.release.retry"
	TopicRedeemRetry   = "voucher.redeem.retry"
	TopicTransferRetry = "voucher.transfer.retry"
	TopicListRetry     = "voucher.list.retry"

	TopicReplyPrefix   = "voucher.reply."
	TopicRequestSuffix = ".req"
	TopicRetrySuffix   = ".retry"
	TopicDLQSuffix     = ".dlq"

	RequestTimeout = 3 * time.Second

	RetryHeaderNextAt = "x-next-at"
	ErrorHeaderKey    = "x-error"
)

func RequestTopics() []string {
	return []string{
		TopicClaimRequest,
		TopicReleaseRequest,
		TopicRedeemRequest,
		TopicTransferRequest,
		TopicListRequest,
	}
}

func RetryTopics() []string {
	return []string{
		TopicClaimRetry,
		TopicReleaseRetry,
		TopicRedeemRetry,
		TopicTransferRetry,
		TopicListRetry,
	}
}
