package main

import "customer_notification_planner/internal/cli"

func main() {
	cli.Execute()
}
