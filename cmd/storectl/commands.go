package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/georgemunganga/storefront-admin/internal/adminclient"
	"github.com/georgemunganga/storefront-admin/internal/modules/landing"
	"github.com/georgemunganga/storefront-admin/internal/modules/store"
	"github.com/georgemunganga/storefront-admin/internal/modules/theme"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	apiURL string
	token  string
}

func (o *globalOptions) client() *adminclient.Client {
	return adminclient.New(o.apiURL, o.token)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "storectl",
		Short:         "Manage a storefront through the admin API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", envOr("STORECTL_API_URL", "http://localhost:8080"), "admin API base URL")
	cmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("STORECTL_TOKEN"), "session token")

	cmd.AddCommand(newStoreCmd(opts), newThemeCmd(opts), newLandingCmd(opts), newOrdersCmd(opts))
	return cmd
}

// report prints a form notice and turns a failed one into an error exit.
func report(w io.Writer, n adminclient.Notice) error {
	if !n.OK {
		return fmt.Errorf("%s (%v)", n.Message, n.Err)
	}
	fmt.Fprintln(w, n.Message)
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newStoreCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "store", Short: "Create, rename or delete a store"}

	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Provision a store with its default landing and theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := store.StoreRequest{Name: args[0]}
			if err := req.Validate(); err != nil {
				return err
			}
			st, err := opts.client().CreateStore(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), st)
		},
	}

	rename := &cobra.Command{
		Use:   "rename STORE_ID NAME",
		Short: "Rename a store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := adminclient.LoadStoreForm(cmd.Context(), opts.client(), args[0])
			if err != nil {
				return err
			}
			n, err := form.Submit(cmd.Context(), store.StoreRequest{Name: args[1]})
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), n)
		},
	}

	del := &cobra.Command{
		Use:   "delete STORE_ID",
		Short: "Delete a store that has no content left",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := adminclient.LoadStoreForm(cmd.Context(), opts.client(), args[0])
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), form.Delete(cmd.Context()))
		},
	}

	cmd.AddCommand(create, rename, del)
	return cmd
}

func newThemeCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "theme", Short: "Show or save a store's theme colors"}

	show := &cobra.Command{
		Use:   "show STORE_ID",
		Short: "Print the colors the theme form would be seeded with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := adminclient.LoadThemeForm(cmd.Context(), opts.client(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), form.Defaults())
		},
	}

	var flags theme.ColorsRequest
	save := &cobra.Command{
		Use:   "save STORE_ID",
		Short: "Create or update the theme; unset colors keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := adminclient.LoadThemeForm(cmd.Context(), opts.client(), args[0])
			if err != nil {
				return err
			}
			values := mergeColors(form.Defaults(), flags)
			n, err := form.Submit(cmd.Context(), values)
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), n)
		},
	}
	f := save.Flags()
	f.StringVar(&flags.PrimaryColor, "primary", "", "primary color")
	f.StringVar(&flags.YoloColor, "yolo", "", "accent color")
	f.StringVar(&flags.BorderColor, "border", "", "border color")
	f.StringVar(&flags.InputColor, "input", "", "input color")
	f.StringVar(&flags.RingColor, "ring", "", "focus ring color")
	f.StringVar(&flags.BackgroundColor, "background", "", "background color")
	f.StringVar(&flags.ForegroundColor, "foreground", "", "foreground color")

	del := &cobra.Command{
		Use:   "delete STORE_ID",
		Short: "Remove the store's theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := adminclient.LoadThemeForm(cmd.Context(), opts.client(), args[0])
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), form.Delete(cmd.Context()))
		},
	}

	cmd.AddCommand(show, save, del)
	return cmd
}

// mergeColors overlays the non-empty fields of set onto base.
func mergeColors(base, set theme.ColorsRequest) theme.ColorsRequest {
	pick := func(cur, v string) string {
		if v != "" {
			return v
		}
		return cur
	}
	return theme.ColorsRequest{
		PrimaryColor:    pick(base.PrimaryColor, set.PrimaryColor),
		YoloColor:       pick(base.YoloColor, set.YoloColor),
		BorderColor:     pick(base.BorderColor, set.BorderColor),
		InputColor:      pick(base.InputColor, set.InputColor),
		RingColor:       pick(base.RingColor, set.RingColor),
		BackgroundColor: pick(base.BackgroundColor, set.BackgroundColor),
		ForegroundColor: pick(base.ForegroundColor, set.ForegroundColor),
	}
}

func newLandingCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "landing", Short: "Edit a store's landing titles"}

	var req landing.UpdateRequest
	save := &cobra.Command{
		Use:   "save STORE_ID",
		Short: "Update the landing titles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := adminclient.LoadLandingForm(cmd.Context(), opts.client(), args[0])
			if err != nil {
				return err
			}
			values := req
			if values.DecodeTitle == "" {
				values.DecodeTitle = form.Initial.DecodeTitle
			}
			if values.MainTitle == "" {
				values.MainTitle = form.Initial.MainTitle
			}
			if values.SecondTitle == "" {
				values.SecondTitle = form.Initial.SecondTitle
			}
			n, err := form.Submit(cmd.Context(), values)
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), n)
		},
	}
	save.Flags().StringVar(&req.DecodeTitle, "decode-title", "", "small title above the headline")
	save.Flags().StringVar(&req.MainTitle, "main-title", "", "headline")
	save.Flags().StringVar(&req.SecondTitle, "second-title", "", "subtitle")

	cmd.AddCommand(save)
	return cmd
}

func newOrdersCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "orders", Short: "List or clear a store's orders"}

	list := &cobra.Command{
		Use:   "list STORE_ID",
		Short: "Print the store's orders, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := adminclient.LoadOrdersView(cmd.Context(), opts.client(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), view.Orders)
		},
	}

	clearAll := &cobra.Command{
		Use:   "clear STORE_ID",
		Short: "Delete every order of the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := adminclient.LoadOrdersView(cmd.Context(), opts.client(), args[0])
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), view.DeleteAll(cmd.Context()))
		},
	}

	cmd.AddCommand(list, clearAll)
	return cmd
}
