package cmd

import (
	"jobboard/internal/adapters/out/postgres"
	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/pkg/token"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateTokenService() (*token.Service, error) {
	return token.NewService(c.config.JWTSecret, c.config.JWTIssuer, 0)
}

func (c *CompositionRoot) CreatePostJobCommandHandler() *commands.PostJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewPostJobCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateEditJobCommandHandler() *commands.EditJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewEditJobCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateRemoveJobCommandHandler() *commands.RemoveJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewRemoveJobCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateCreateCompanyCommandHandler() *commands.CreateCompanyCommandHandler {
	var f commands.CompanyUoWFactory = FuncCompanyUoWFactory(func() commands.CompanyUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCreateCompanyCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateEditCompanyCommandHandler() *commands.EditCompanyCommandHandler {
	var f commands.CompanyUoWFactory = FuncCompanyUoWFactory(func() commands.CompanyUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewEditCompanyCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateRemoveCompanyCommandHandler() *commands.RemoveCompanyCommandHandler {
	var f commands.CompanyUoWFactory = FuncCompanyUoWFactory(func() commands.CompanyUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewRemoveCompanyCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() *commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewRegisterUserCommandHandler(f, 0)
	return &handler
}

func (c *CompositionRoot) CreateFindJobsQueryHandler() queries.FindJobsQueryHandler {
	return queries.NewFindJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindCompaniesQueryHandler() queries.FindCompaniesQueryHandler {
	return queries.NewFindCompaniesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCompanyQueryHandler() queries.GetCompanyQueryHandler {
	return queries.NewGetCompanyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBoardStatsQueryHandler() queries.GetBoardStatsQueryHandler {
	return queries.NewGetBoardStatsQueryHandler(c.gormDB)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncCompanyUoWFactory func() commands.CompanyUoW

func (f FuncCompanyUoWFactory) Create() commands.CompanyUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
