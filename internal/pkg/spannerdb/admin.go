// Package spannerdb provisions Spanner instances and databases and applies
// the embedded schema.
package spannerdb

import (
	"context"
	"fmt"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	instancepb "cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Name is a parsed database path:
// projects/<project>/instances/<instance>/databases/<database>.
type Name struct {
	Project  string
	Instance string
	Database string
}

func ParseName(path string) (Name, error) {
	parts := strings.Split(path, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return Name{}, fmt.Errorf("invalid spanner database path %q", path)
	}
	for _, p := range []string{parts[1], parts[3], parts[5]} {
		if p == "" {
			return Name{}, fmt.Errorf("invalid spanner database path %q", path)
		}
	}
	return Name{Project: parts[1], Instance: parts[3], Database: parts[5]}, nil
}

func (n Name) ProjectPath() string  { return "projects/" + n.Project }
func (n Name) InstancePath() string { return n.ProjectPath() + "/instances/" + n.Instance }
func (n Name) String() string       { return n.InstancePath() + "/databases/" + n.Database }

// Admin wraps the instance and database admin clients.
type Admin struct {
	instances *instance.InstanceAdminClient
	databases *database.DatabaseAdminClient
}

func NewAdmin(ctx context.Context) (*Admin, error) {
	instAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("instance admin client: %w", err)
	}
	dbAdmin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		_ = instAdmin.Close()
		return nil, fmt.Errorf("database admin client: %w", err)
	}
	return &Admin{instances: instAdmin, databases: dbAdmin}, nil
}

func (a *Admin) Close() error {
	err := a.databases.Close()
	if ierr := a.instances.Close(); err == nil {
		err = ierr
	}
	return err
}

// EnsureInstance creates the instance on the emulator config if it is missing.
func (a *Admin) EnsureInstance(ctx context.Context, n Name) error {
	_, err := a.instances.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: n.InstancePath()})
	if err == nil {
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("get instance: %w", err)
	}

	op, err := a.instances.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     n.ProjectPath(),
		InstanceId: n.Instance,
		Instance: &instancepb.Instance{
			Config:      n.ProjectPath() + "/instanceConfigs/emulator-config",
			DisplayName: n.Instance,
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("create instance wait: %w", err)
	}
	return nil
}

// EnsureDatabase creates the database if it is missing.
func (a *Admin) EnsureDatabase(ctx context.Context, n Name) error {
	op, err := a.databases.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          n.InstancePath(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", n.Database),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("create database wait: %w", err)
	}
	return nil
}

// ApplySchema runs stmts unless the database already has a schema. It
// reports whether anything was applied.
func (a *Admin) ApplySchema(ctx context.Context, n Name, stmts []string) (bool, error) {
	current, err := a.databases.GetDatabaseDdl(ctx, &databasepb.GetDatabaseDdlRequest{Database: n.String()})
	if err != nil {
		return false, fmt.Errorf("get database ddl: %w", err)
	}
	if len(current.GetStatements()) > 0 {
		return false, nil
	}

	op, err := a.databases.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   n.String(),
		Statements: stmts,
	})
	if err != nil {
		return false, fmt.Errorf("update database ddl: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return false, fmt.Errorf("update database ddl wait: %w", err)
	}
	return true, nil
}

func (a *Admin) DropDatabase(ctx context.Context, n Name) error {
	return a.databases.DropDatabase(ctx, &databasepb.DropDatabaseRequest{Database: n.String()})
}
