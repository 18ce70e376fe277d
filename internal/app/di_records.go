package app

import (
	"fmt"

	"github.com/allisson/sealbox/internal/database"
	recordsHTTP "github.com/allisson/sealbox/internal/records/http"
	recordsRepository "github.com/allisson/sealbox/internal/records/repository"
	recordsUseCase "github.com/allisson/sealbox/internal/records/usecase"
)

// RecordRepository returns the record repository for the configured database driver.
func (c *Container) RecordRepository() (recordsUseCase.RecordRepository, error) {
	var err error
	c.recordRepoInit.Do(func() {
		c.recordRepo, err = c.initRecordRepository()
		if err != nil {
			c.setInitError("recordRepo", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("recordRepo"); storedErr != nil {
		return nil, storedErr
	}
	return c.recordRepo, nil
}

// RecordUseCase returns the record store use case.
func (c *Container) RecordUseCase() (recordsUseCase.RecordUseCase, error) {
	var err error
	c.recordUseCaseInit.Do(func() {
		c.recordUseCase, err = c.initRecordUseCase()
		if err != nil {
			c.setInitError("recordUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("recordUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.recordUseCase, nil
}

// RotationUseCase returns the batch rotation use case.
func (c *Container) RotationUseCase() (recordsUseCase.RotationUseCase, error) {
	var err error
	c.rotationUseCaseInit.Do(func() {
		c.rotationUseCase, err = c.initRotationUseCase()
		if err != nil {
			c.setInitError("rotationUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("rotationUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.rotationUseCase, nil
}

// RecordHandler returns the HTTP handler for record operations.
func (c *Container) RecordHandler() (*recordsHTTP.RecordHandler, error) {
	var err error
	c.recordHandlerInit.Do(func() {
		c.recordHandler, err = c.initRecordHandler()
		if err != nil {
			c.setInitError("recordHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("recordHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.recordHandler, nil
}

// initRecordRepository creates the record repository based on the database driver.
func (c *Container) initRecordRepository() (recordsUseCase.RecordRepository, error) {
	switch c.config.DBDriver {
	case database.DriverPostgres, database.DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for record repository: %w", err)
	}

	if c.config.DBDriver == database.DriverMySQL {
		return recordsRepository.NewMySQLRecordRepository(db), nil
	}
	return recordsRepository.NewPostgreSQLRecordRepository(db), nil
}

// initRecordUseCase creates the record use case with all its dependencies.
func (c *Container) initRecordUseCase() (recordsUseCase.RecordUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for record use case: %w", err)
	}

	recordRepo, err := c.RecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get record repository for record use case: %w", err)
	}

	baseUseCase := recordsUseCase.NewRecordUseCase(txManager, recordRepo, c.Codec())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for record use case: %w", err)
		}
		return recordsUseCase.NewRecordUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initRotationUseCase creates the rotation use case with all its dependencies.
func (c *Container) initRotationUseCase() (recordsUseCase.RotationUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for rotation use case: %w", err)
	}

	recordRepo, err := c.RecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get record repository for rotation use case: %w", err)
	}

	envelopeUseCase, err := c.EnvelopeUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope use case for rotation use case: %w", err)
	}

	baseUseCase := recordsUseCase.NewRotationUseCase(
		txManager,
		recordRepo,
		envelopeUseCase,
		c.Codec(),
		c.config.RotationConcurrency,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for rotation use case: %w", err)
		}
		return recordsUseCase.NewRotationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initRecordHandler creates the record HTTP handler.
func (c *Container) initRecordHandler() (*recordsHTTP.RecordHandler, error) {
	recordUseCase, err := c.RecordUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get record use case for record handler: %w", err)
	}
	return recordsHTTP.NewRecordHandler(recordUseCase, c.Logger()), nil
}
