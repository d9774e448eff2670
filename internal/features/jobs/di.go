package jobs

import (
	"seekit/internal/cache"
	cache_utils "seekit/internal/util/cache"
)

var jobRepository = &JobRepository{}

var jobService = &JobService{
	jobRepository: jobRepository,
	jobCacheUtil:  cache_utils.NewCacheUtil[Job](cache.GetCache(), "jobs:"),
}

var jobController = &JobController{
	jobService: jobService,
}

func GetJobService() *JobService {
	return jobService
}

func GetJobController() *JobController {
	return jobController
}
