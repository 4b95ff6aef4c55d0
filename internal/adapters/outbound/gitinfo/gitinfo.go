package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.GitInfo using go-git. Dataset roots that
// are version-controlled get their HEAD hash stamped onto the result so a
// report can be tied back to an exact dataset revision.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(datasetPath string) bool {
	_, err := git.PlainOpen(datasetPath)
	return err == nil
}

func (g *GitInfoAdapter) CommitHash(datasetPath string) (string, error) {
	repo, err := git.PlainOpen(datasetPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
