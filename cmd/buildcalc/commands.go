package main

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/mhwbuild/internal/model"
	"github.com/udisondev/mhwbuild/internal/sharecode"
)

func runCalc(_ context.Context, a *app, args []string) error {
	b, err := readBuildFile(args[0])
	if err != nil {
		return err
	}
	return a.printBuildResult(b)
}

func runShare(_ context.Context, a *app, args []string) error {
	b, err := readBuildFile(args[0])
	if err != nil {
		return err
	}
	code, err := sharecode.Encode(b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, code)
	return err
}

func runDecode(_ context.Context, a *app, args []string) error {
	b, err := sharecode.Decode(args[0])
	if err != nil {
		return err
	}
	raw, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshaling build: %w", err)
	}
	if _, err := a.out.Write(raw); err != nil {
		return err
	}
	return a.printBuildResult(b)
}

func runSave(ctx context.Context, a *app, args []string) error {
	b, err := readBuildFile(args[0])
	if err != nil {
		return err
	}
	// reject builds that reference unknown catalog entries
	if _, err := a.aggregate(b); err != nil {
		return err
	}
	database, err := a.database(ctx)
	if err != nil {
		return err
	}
	if err := database.Builds().Save(ctx, b); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "saved %q\n", b.Name)
	return err
}

func runLoad(ctx context.Context, a *app, args []string) error {
	database, err := a.database(ctx)
	if err != nil {
		return err
	}
	b, err := database.Builds().Load(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printBuildResult(b)
}

func runList(ctx context.Context, a *app, _ []string) error {
	database, err := a.database(ctx)
	if err != nil {
		return err
	}
	names, err := database.Builds().List(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(a.out, name); err != nil {
			return err
		}
	}
	return nil
}

func runDelete(ctx context.Context, a *app, args []string) error {
	database, err := a.database(ctx)
	if err != nil {
		return err
	}
	if err := database.Builds().Delete(ctx, args[0]); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "deleted %q\n", args[0])
	return err
}

func (a *app) printBuildResult(b model.Build) error {
	res, err := a.aggregate(b)
	if err != nil {
		return err
	}
	return render(a.out, b.Name, res)
}
