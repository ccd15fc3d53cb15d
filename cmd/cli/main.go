package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "transferd-cli",
		Short: "transferd CLI tool",
		Long:  `A command line interface for interacting with the transferd API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the transferd API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}
	accountsCmd.AddCommand(listAccountsCmd(), getAccountCmd())
	rootCmd.AddCommand(accountsCmd)

	transactionsCmd := &cobra.Command{
		Use:   "transactions",
		Short: "Transaction operations",
	}
	transactionsCmd.AddCommand(sendCmd(), getTransactionCmd())
	rootCmd.AddCommand(transactionsCmd)

	return rootCmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/")
		},
	}
}

func getAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an account by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0])
		},
	}
}

func getTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a transaction by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/transactions/" + args[0])
		},
	}
}

func sendCmd() *cobra.Command {
	var from, to, amount, currency string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Move funds between two accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{
				"from_account_id": from,
				"to_account_id":   to,
				"amount":          amount,
				"currency":        currency,
			}

			return postJSON("/api/v1/transactions/", payload)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Source account ID")
	cmd.Flags().StringVar(&to, "to", "", "Destination account ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to transfer")
	cmd.Flags().StringVar(&currency, "currency", "EUR", "Currency of the amount")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postJSON(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	client := &http.Client{Timeout: timeout}

	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	printJSON(decoded)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render output: %v\n", err)
		return
	}

	fmt.Println(string(out))
}
