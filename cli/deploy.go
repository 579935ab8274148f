package cli

// This file contains the deploy command: CI and hosting status for each
// configured bot deployment.

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/hackreality/botops/deploy"
)

func (a *App) deploy(ctx *cli.Context) error {
	checker := deploy.NewChecker()

	fmt.Println("Checking deployment status...")

	allOnline := true
	for _, target := range a.cfg.Deploy.Targets {
		fmt.Printf("\n%s (%s):\n", target.Name, target.Repo)

		run, err := checker.CheckActions(a.cfg.Deploy.Owner, target.Repo)
		if err != nil {
			a.logger.Debug().Err(err).Str("repo", target.Repo).Msg("Actions check failed")
			fmt.Println("  GitHub Actions: unable to check")
		} else {
			fmt.Printf("  GitHub Actions: %s - %s\n", run.Status, run.Conclusion)
			fmt.Printf("  Commit: %s\n", run.HeadSHA)
			fmt.Printf("  Created: %s\n", run.CreatedAt)
		}

		online := checker.CheckApp(deploy.AppURL(target.App))
		if online {
			fmt.Println("  Heroku App: online")
		} else {
			fmt.Println("  Heroku App: offline")
			allOnline = false
		}
	}

	fmt.Println()
	if allOnline {
		fmt.Println("All bots are deployed and online")
	} else {
		fmt.Println("Some bots may need attention")
	}
	return nil
}
