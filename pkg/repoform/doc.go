// Package repoform is the repository-settings dialog built on top of the
// form engine.
//
// It owns the domain side of the collaborator contract: New wires
// repository defaults and validators into a form description, Show and
// ShowPrompts render it, and ToConfig converts a submitted result into a
// Config. The engine renders and resolves; it never learns what the
// values mean, and the conversion never learns how they were rendered.
//
//	f := repoform.New(repoform.Defaults{Username: "octocat"})
//	res, err := f.Show()
//	if err != nil {
//	    return err
//	}
//	cfg, err := res.ToConfig()
package repoform
