package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/Pallarran/Ultimate-D-D-Tools/internal/handlers/api/v1alpha1"
)

var (
	listTag      string
	importedName string
)

var createBuildCmd = &cobra.Command{
	Use:   "create-build [name]",
	Short: "Create a build from the default template",
	Args:  cobra.ExactArgs(1),
	RunE:  createBuild,
}

var listBuildsCmd = &cobra.Command{
	Use:   "list-builds",
	Short: "List stored builds, newest first",
	Args:  cobra.NoArgs,
	RunE:  listBuilds,
}

var importWeaponCmd = &cobra.Command{
	Use:   "import-weapon [build-id] [weapon-id]",
	Short: "Add an SRD weapon to a build as an attack profile",
	Long: `Look up an SRD weapon and add it to a build as an attack profile. Examples:

  import-weapon build_123 longsword
  import-weapon build_123 longbow --name "Oathbow"`,
	Args: cobra.ExactArgs(2),
	RunE: importWeapon,
}

func init() {
	listBuildsCmd.Flags().StringVar(&listTag, "tag", "", "Only list builds with this tag")
	importWeaponCmd.Flags().StringVar(&importedName, "name", "", "Name for the new profile")
}

func createBuild(_ *cobra.Command, args []string) error {
	client, cleanup, err := createBuildClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateBuild(ctx, &v1alpha1.CreateBuildRequest{Name: args[0]})
	if err != nil {
		return fmt.Errorf("failed to create build: %w", err)
	}

	if jsonOutput {
		return PrintJSON(os.Stdout, resp)
	}
	fmt.Printf("Created build %s (%s)\n", resp.Build.ID, resp.Build.Name)
	for _, f := range resp.Findings {
		fmt.Printf("  [%s] %s: %s\n", f.Severity, f.Field, f.Message)
	}
	return nil
}

func listBuilds(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBuildClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListBuilds(ctx, &v1alpha1.ListBuildsRequest{Tag: listTag})
	if err != nil {
		return fmt.Errorf("failed to list builds: %w", err)
	}

	if jsonOutput {
		return PrintJSON(os.Stdout, resp)
	}
	fmt.Printf("Found %d builds\n", len(resp.Builds))
	for _, b := range resp.Builds {
		updated := time.Unix(b.UpdatedAt, 0).Format("2006-01-02 15:04")
		fmt.Printf("  %s  %-24s  level %2d %-10s  %s\n", b.ID, b.Name, b.Level, b.Class, updated)
	}
	return nil
}

func importWeapon(_ *cobra.Command, args []string) error {
	client, cleanup, err := createBuildClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ImportWeaponProfile(ctx, &v1alpha1.ImportWeaponProfileRequest{
		BuildID:  args[0],
		WeaponID: args[1],
		Name:     importedName,
	})
	if err != nil {
		return fmt.Errorf("failed to import weapon: %w", err)
	}

	if jsonOutput {
		return PrintJSON(os.Stdout, resp)
	}
	p := resp.Profile
	fmt.Printf("Added %s (%s) to %s: %s to hit, %s %s\n",
		p.Name, p.ID, resp.Build.ID, p.AttackBonusFormula, p.DamageHit, p.DamageType)
	return nil
}
