package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
	"github.com/de-tools/learn-atlas/pkg/services/templates"
)

type TemplatesCmd struct {
	role     string
	registry templates.Registry
	output   io.Writer
}

func NewTemplatesCmd(registry templates.Registry, output io.Writer) *cobra.Command {
	tc := &TemplatesCmd{registry: registry, output: output}
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the report templates visible to a role",
		RunE:  tc.run,
	}

	cmd.Flags().StringVar(&tc.role, "role", string(domain.RoleAdmin), "Role to list templates for")

	return cmd
}

func (tc *TemplatesCmd) run(cmd *cobra.Command, args []string) error {
	visible := tc.registry.ListFor(domain.Role(tc.role))
	if len(visible) == 0 {
		_, err := fmt.Fprintf(tc.output, "No templates available for role %q\n", tc.role)
		return err
	}

	for _, t := range visible {
		keys := t.FieldKeys()
		_, err := fmt.Fprintf(tc.output, "%s\t%s\t(%s)\n\t%s\n\tcolumns: %s\n",
			t.ID, t.Name, t.Type, t.Description, strings.Join(keys, ", "))
		if err != nil {
			return err
		}
	}
	return nil
}
