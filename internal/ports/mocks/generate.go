//go:generate mockgen -source=../collaborators.go     -destination=./mock_collaborators.go     -package=mocks
//go:generate mockgen -source=../validator.go         -destination=./mock_validator.go         -package=mocks
//go:generate mockgen -source=../logger.go            -destination=./mock_logger.go            -package=mocks
//go:generate mockgen -source=../ticket_purchaser.go  -destination=./mock_ticket_purchaser.go  -package=mocks

package mocks
