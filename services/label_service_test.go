package services

import (
	"context"
	"errors"
	"testing"
)

func TestCreateLabelRequiresOwnership(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser(t, "alice@example.com")
	bob := env.addUser(t, "bob@example.com")
	project := env.addProject(t, alice, "P1")

	if _, err := env.labels.CreateLabel(context.Background(), bob, project.ID, LabelCreateInput{Name: "Bug", Color: "#FF0000"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign CreateLabel: got %v, want ErrForbidden", err)
	}

	label, err := env.labels.CreateLabel(context.Background(), alice, project.ID, LabelCreateInput{Name: "Bug", Color: "#FF0000"})
	if err != nil {
		t.Fatalf("CreateLabel: %v", err)
	}
	if label.ProjectID != project.ID {
		t.Errorf("label project %s, want %s", label.ProjectID.Hex(), project.ID.Hex())
	}
}

func TestListLabels(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser(t, "alice@example.com")
	bob := env.addUser(t, "bob@example.com")
	project := env.addProject(t, alice, "P1")

	for _, name := range []string{"Bug", "Feature"} {
		if _, err := env.labels.CreateLabel(context.Background(), alice, project.ID, LabelCreateInput{Name: name, Color: "#00FF00"}); err != nil {
			t.Fatalf("CreateLabel %s: %v", name, err)
		}
	}

	labels, err := env.labels.ListLabels(context.Background(), alice, project.ID)
	if err != nil {
		t.Fatalf("ListLabels: %v", err)
	}
	if len(labels) != 2 {
		t.Errorf("got %d labels, want 2", len(labels))
	}

	if _, err := env.labels.ListLabels(context.Background(), bob, project.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign ListLabels: got %v, want ErrForbidden", err)
	}
}

func TestAssignLabel(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser(t, "alice@example.com")
	project := env.addProject(t, alice, "P1")
	other := env.addProject(t, alice, "P2")
	task := env.addTask(t, alice, project.ID, "T1")

	label, err := env.labels.CreateLabel(context.Background(), alice, project.ID, LabelCreateInput{Name: "Bug", Color: "#FF0000"})
	if err != nil {
		t.Fatalf("CreateLabel: %v", err)
	}
	foreignLabel, err := env.labels.CreateLabel(context.Background(), alice, other.ID, LabelCreateInput{Name: "Misc", Color: "#123456"})
	if err != nil {
		t.Fatalf("CreateLabel: %v", err)
	}

	if err := env.labels.AssignLabel(context.Background(), alice, task.ID, label.ID); err != nil {
		t.Fatalf("AssignLabel: %v", err)
	}

	// The pair is unique.
	if err := env.labels.AssignLabel(context.Background(), alice, task.ID, label.ID); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate AssignLabel: got %v, want ErrConflict", err)
	}

	// A label from another project cannot be attached.
	if err := env.labels.AssignLabel(context.Background(), alice, task.ID, foreignLabel.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-project AssignLabel: got %v, want ErrNotFound", err)
	}

	labels, err := env.labels.ListTaskLabels(context.Background(), alice, task.ID)
	if err != nil {
		t.Fatalf("ListTaskLabels: %v", err)
	}
	if len(labels) != 1 || labels[0].ID != label.ID {
		t.Errorf("task labels %+v, want only the assigned one", labels)
	}
}

func TestUnassignLabel(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser(t, "alice@example.com")
	project := env.addProject(t, alice, "P1")
	task := env.addTask(t, alice, project.ID, "T1")

	label, err := env.labels.CreateLabel(context.Background(), alice, project.ID, LabelCreateInput{Name: "Bug", Color: "#FF0000"})
	if err != nil {
		t.Fatalf("CreateLabel: %v", err)
	}

	if err := env.labels.UnassignLabel(context.Background(), alice, task.ID, label.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("unassign absent pair: got %v, want ErrNotFound", err)
	}

	if err := env.labels.AssignLabel(context.Background(), alice, task.ID, label.ID); err != nil {
		t.Fatalf("AssignLabel: %v", err)
	}
	if err := env.labels.UnassignLabel(context.Background(), alice, task.ID, label.ID); err != nil {
		t.Fatalf("UnassignLabel: %v", err)
	}

	labels, err := env.labels.ListTaskLabels(context.Background(), alice, task.ID)
	if err != nil {
		t.Fatalf("ListTaskLabels: %v", err)
	}
	if len(labels) != 0 {
		t.Errorf("label still attached after unassign")
	}
}
