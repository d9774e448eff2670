package activity

import (
	"seekit/internal/util/logger"
)

var activityRepository = &ActivityRepository{}
var activityService = &ActivityService{
	activityRepository: activityRepository,
	logger:             logger.GetLogger(),
}

func GetActivityService() *ActivityService {
	return activityService
}
