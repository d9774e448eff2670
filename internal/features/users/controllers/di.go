package users_controllers

import (
	users_services "seekit/internal/features/users/services"

	"golang.org/x/time/rate"
)

var userController = &UserController{
	userService: users_services.GetUserService(),
	// 10 sign-in attempts per second across the instance
	signinLimiter: rate.NewLimiter(rate.Limit(10), 10),
}

func GetUserController() *UserController {
	return userController
}
