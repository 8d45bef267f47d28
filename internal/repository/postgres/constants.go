package postgres

import (
	"fmt"
	"time"
)

const (
	bucketNameIDSegmentLength = 8

	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second

	errProjectNotFound = "project not found"
	errSpaceNotFound   = "space not found"
	errImageNotFound   = "image not found"
	errPromptNotFound  = "saved prompt not found"

	errFailedParseDatabaseConfigFmt  = "failed to parse database config: %w"
	errFailedCreateConnectionPoolFmt = "failed to create connection pool: %w"
	errFailedPingDatabaseFmt         = "failed to ping database: %w"

	errFailedCreateProjectFmt = "failed to create project: %w"
	errFailedGetProjectFmt    = "failed to get project: %w"
	errFailedListProjectsFmt  = "failed to list projects: %w"
	errFailedScanProjectFmt   = "failed to scan project: %w"
	errFailedCountProjectsFmt = "failed to count projects: %w"
	errFailedUpdateProjectFmt = "failed to update project: %w"
	errFailedDeleteProjectFmt = "failed to delete project: %w"

	errFailedCreateSpaceFmt = "failed to create space: %w"
	errFailedGetSpaceFmt    = "failed to get space: %w"
	errFailedListSpacesFmt  = "failed to list spaces: %w"
	errFailedScanSpaceFmt   = "failed to scan space: %w"
	errFailedCountSpacesFmt = "failed to count spaces: %w"
	errFailedUpdateSpaceFmt = "failed to update space: %w"
	errFailedDeleteSpaceFmt = "failed to delete space: %w"

	errFailedCreateImageFmt      = "failed to create image: %w"
	errFailedGetImageFmt         = "failed to get image: %w"
	errFailedListImagesFmt       = "failed to list images: %w"
	errFailedScanImageFmt        = "failed to scan image: %w"
	errFailedCountImagesFmt      = "failed to count images: %w"
	errFailedEncodeOperationsFmt = "failed to encode evolution chain: %w"
	errFailedDecodeOperationsFmt = "failed to decode evolution chain: %w"
	errFailedSoftDeleteImageFmt  = "failed to soft-delete image: %w"
	errFailedPurgeImagesFmt      = "failed to purge deleted images: %w"

	errFailedSavePromptFmt   = "failed to save custom prompt: %w"
	errFailedListPromptsFmt  = "failed to list custom prompts: %w"
	errFailedScanPromptFmt   = "failed to scan custom prompt: %w"
	errFailedDeletePromptFmt = "failed to delete custom prompt: %w"

	errFailedIncrementUsageFmt = "failed to increment usage counter: %w"
	errFailedGetUsageFmt       = "failed to get usage counter: %w"
)

var (
	errFailedParseDatabaseConfig  = func(err error) error { return fmt.Errorf(errFailedParseDatabaseConfigFmt, err) }
	errFailedCreateConnectionPool = func(err error) error { return fmt.Errorf(errFailedCreateConnectionPoolFmt, err) }
	errFailedPingDatabase         = func(err error) error { return fmt.Errorf(errFailedPingDatabaseFmt, err) }

	errFailedCreateProject = func(err error) error { return fmt.Errorf(errFailedCreateProjectFmt, err) }
	errFailedGetProject    = func(err error) error { return fmt.Errorf(errFailedGetProjectFmt, err) }
	errFailedListProjects  = func(err error) error { return fmt.Errorf(errFailedListProjectsFmt, err) }
	errFailedScanProject   = func(err error) error { return fmt.Errorf(errFailedScanProjectFmt, err) }
	errFailedCountProjects = func(err error) error { return fmt.Errorf(errFailedCountProjectsFmt, err) }
	errFailedUpdateProject = func(err error) error { return fmt.Errorf(errFailedUpdateProjectFmt, err) }
	errFailedDeleteProject = func(err error) error { return fmt.Errorf(errFailedDeleteProjectFmt, err) }

	errFailedCreateSpace = func(err error) error { return fmt.Errorf(errFailedCreateSpaceFmt, err) }
	errFailedGetSpace    = func(err error) error { return fmt.Errorf(errFailedGetSpaceFmt, err) }
	errFailedListSpaces  = func(err error) error { return fmt.Errorf(errFailedListSpacesFmt, err) }
	errFailedScanSpace   = func(err error) error { return fmt.Errorf(errFailedScanSpaceFmt, err) }
	errFailedCountSpaces = func(err error) error { return fmt.Errorf(errFailedCountSpacesFmt, err) }
	errFailedUpdateSpace = func(err error) error { return fmt.Errorf(errFailedUpdateSpaceFmt, err) }
	errFailedDeleteSpace = func(err error) error { return fmt.Errorf(errFailedDeleteSpaceFmt, err) }

	errFailedCreateImage      = func(err error) error { return fmt.Errorf(errFailedCreateImageFmt, err) }
	errFailedGetImage         = func(err error) error { return fmt.Errorf(errFailedGetImageFmt, err) }
	errFailedListImages       = func(err error) error { return fmt.Errorf(errFailedListImagesFmt, err) }
	errFailedScanImage        = func(err error) error { return fmt.Errorf(errFailedScanImageFmt, err) }
	errFailedCountImages      = func(err error) error { return fmt.Errorf(errFailedCountImagesFmt, err) }
	errFailedEncodeOperations = func(err error) error { return fmt.Errorf(errFailedEncodeOperationsFmt, err) }
	errFailedDecodeOperations = func(err error) error { return fmt.Errorf(errFailedDecodeOperationsFmt, err) }
	errFailedSoftDeleteImage  = func(err error) error { return fmt.Errorf(errFailedSoftDeleteImageFmt, err) }
	errFailedPurgeImages      = func(err error) error { return fmt.Errorf(errFailedPurgeImagesFmt, err) }

	errFailedSavePrompt   = func(err error) error { return fmt.Errorf(errFailedSavePromptFmt, err) }
	errFailedListPrompts  = func(err error) error { return fmt.Errorf(errFailedListPromptsFmt, err) }
	errFailedScanPrompt   = func(err error) error { return fmt.Errorf(errFailedScanPromptFmt, err) }
	errFailedDeletePrompt = func(err error) error { return fmt.Errorf(errFailedDeletePromptFmt, err) }

	errFailedIncrementUsage = func(err error) error { return fmt.Errorf(errFailedIncrementUsageFmt, err) }
	errFailedGetUsage       = func(err error) error { return fmt.Errorf(errFailedGetUsageFmt, err) }
)
