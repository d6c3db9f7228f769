package cmd

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
)

func cmdLambda() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lambda",
		Short: "Run as an AWS Lambda function",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rtm, err := setup(cmd.Context())
			if err != nil {
				return err
			}

			logger.Info("lambda starting...", "payloadType", rtm.PayloadType())
			lambda.StartWithOptions(rtm.Lambda,
				lambda.WithContext(cmd.Context()))
			return nil
		},
	}

	return cmd
}
