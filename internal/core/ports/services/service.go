package services

// ServiceContainer holds every service facade the application wires up.
type ServiceContainer struct {
	Statement    StatementSvcFacade
	Coding       CodingSvcFacade
	TrialBalance TrialBalanceSvcFacade
}
