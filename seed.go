package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"taskforge/backend/logging"
	"taskforge/backend/models"
	"taskforge/backend/store"
)

// seed loads the demo fixture set. Skips when the admin user already exists.
// Fixtures are written through the stores directly because some seeded
// comments are authored by non-owners, which the service admission rules
// would refuse.
func seed(ctx context.Context, stores *store.Mongo) error {
	if _, err := stores.Users.GetByEmail(ctx, "admin@taskforge.com"); err == nil {
		logging.Logger.Info("Event ID: SEED_SKIPPED, Description: Database already seeded.")
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	now := time.Now().UTC()

	newUser := func(email, name string, role models.UserRole, password string) (*models.User, error) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user := &models.User{
			Email:        email,
			PasswordHash: string(hashed),
			Name:         name,
			Role:         role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return user, stores.Users.Insert(ctx, user)
	}

	admin, err := newUser("admin@taskforge.com", "Admin User", models.RoleAdmin, "admin123")
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	alice, err := newUser("alice@taskforge.com", "Alice Smith", models.RoleMember, "alice123")
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	bob, err := newUser("bob@taskforge.com", "Bob Johnson", models.RoleMember, "bob123")
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if _, err := newUser("viewer@taskforge.com", "Viewer User", models.RoleViewer, "viewer123"); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	newProject := func(name, description string, status models.ProjectStatus, owner primitive.ObjectID) (*models.Project, error) {
		project := &models.Project{
			Name:        name,
			Description: description,
			Status:      status,
			OwnerID:     owner,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return project, stores.Projects.Insert(ctx, project)
	}

	project1, err := newProject("Website Redesign", "Redesign the company website with modern UI/UX", models.ProjectActive, admin.ID)
	if err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	project2, err := newProject("Mobile App", "Develop a mobile app for iOS and Android", models.ProjectActive, admin.ID)
	if err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	project3, err := newProject("Internal Tools", "Build internal productivity tools", models.ProjectActive, alice.ID)
	if err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	if _, err := newProject("Legacy Migration", "Migrate legacy systems to new infrastructure", models.ProjectArchived, admin.ID); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}

	newLabel := func(name, color string, projectID primitive.ObjectID) (*models.Label, error) {
		label := &models.Label{Name: name, Color: color, ProjectID: projectID}
		return label, stores.Labels.Insert(ctx, label)
	}

	bugLabel, err := newLabel("Bug", "#FF0000", project1.ID)
	if err != nil {
		return fmt.Errorf("seed labels: %w", err)
	}
	featureLabel, err := newLabel("Feature", "#00FF00", project1.ID)
	if err != nil {
		return fmt.Errorf("seed labels: %w", err)
	}
	urgentLabel, err := newLabel("Urgent", "#FF6600", project1.ID)
	if err != nil {
		return fmt.Errorf("seed labels: %w", err)
	}
	backendLabel, err := newLabel("Backend", "#0000FF", project2.ID)
	if err != nil {
		return fmt.Errorf("seed labels: %w", err)
	}
	if _, err := newLabel("Frontend", "#00FFFF", project2.ID); err != nil {
		return fmt.Errorf("seed labels: %w", err)
	}

	newTask := func(title, description string, status models.TaskStatus, priority models.TaskPriority, projectID primitive.ObjectID, assignee *primitive.ObjectID) (*models.Task, error) {
		task := &models.Task{
			Title:       title,
			Description: description,
			Status:      status,
			Priority:    priority,
			ProjectID:   projectID,
			AssigneeID:  assignee,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return task, stores.Tasks.Insert(ctx, task)
	}

	task1, err := newTask("Design homepage mockup", "Create mockups for the new homepage design", models.StatusDone, models.PriorityHigh, project1.ID, &alice.ID)
	if err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}
	task2, err := newTask("Implement responsive navigation", "Build a mobile-friendly navigation menu", models.StatusInProgress, models.PriorityMedium, project1.ID, &bob.ID)
	if err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}
	task3, err := newTask("Fix header alignment issue", "Header is misaligned on mobile devices", models.StatusTodo, models.PriorityUrgent, project1.ID, &bob.ID)
	if err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}
	if _, err := newTask("Setup project structure", "Initialize the mobile project with proper architecture", models.StatusDone, models.PriorityHigh, project2.ID, &admin.ID); err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}
	task5, err := newTask("Implement authentication", "Add user authentication with JWT", models.StatusInProgress, models.PriorityHigh, project2.ID, &alice.ID)
	if err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}
	if _, err := newTask("Design app icon", "Create app icon for iOS and Android", models.StatusTodo, models.PriorityLow, project2.ID, nil); err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}
	if _, err := newTask("Build reporting dashboard", "Create dashboard for team metrics", models.StatusInProgress, models.PriorityMedium, project3.ID, &alice.ID); err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}

	links := []models.TaskLabel{
		{TaskID: task3.ID, LabelID: bugLabel.ID},
		{TaskID: task3.ID, LabelID: urgentLabel.ID},
		{TaskID: task1.ID, LabelID: featureLabel.ID},
		{TaskID: task5.ID, LabelID: backendLabel.ID},
	}
	for i := range links {
		if err := stores.TaskLabels.Insert(ctx, &links[i]); err != nil {
			return fmt.Errorf("seed task labels: %w", err)
		}
	}

	comments := []models.Comment{
		{Content: "Great work on the mockups! The design looks modern and clean.", TaskID: task1.ID, AuthorID: admin.ID},
		{Content: "I'm working on this now. Should be done by end of day.", TaskID: task2.ID, AuthorID: bob.ID},
		{Content: "This is blocking the mobile release. Please prioritize.", TaskID: task3.ID, AuthorID: admin.ID},
		{Content: "I've investigated the issue. It's related to CSS flexbox.", TaskID: task3.ID, AuthorID: bob.ID},
		{Content: "Authentication flow is working. Now adding refresh token logic.", TaskID: task5.ID, AuthorID: alice.ID},
	}
	for i := range comments {
		comments[i].CreatedAt = now
		comments[i].UpdatedAt = now
		if err := stores.Comments.Insert(ctx, &comments[i]); err != nil {
			return fmt.Errorf("seed comments: %w", err)
		}
	}

	return nil
}
