package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmixer/unicredit/internal/core/marketplace"
)

//	@Summary	List tasks
//	@Tags		task
//	@Produce	json
//	@Success	200	{array}	tTask	"ok"
//	@failure	401	"unauthorized"
//	@failure	500	"internal server error"
//	@Router		/api/tasks [get]
func (s *Server) handlerListTasks(c *gin.Context) {
	tasks, err := s.service.ListTasks(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	result := make([]tTask, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, newTask(task))
	}

	c.JSON(http.StatusOK, result)
}

//	@Summary	Create task
//	@Schemes
//	@Description	posts a task; the reward is paid when the creator completes it
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			task	body		tNewTask	true	"task"
//	@Success		201		{object}	tTask		"task created"
//	@failure		400		"invalid request"
//	@failure		401		"unauthorized"
//	@failure		402		"reward exceeds balance"
//	@failure		500		"internal server error"
//	@Router			/api/tasks [post]
func (s *Server) handlerCreateTask(c *gin.Context) {
	body := tNewTask{}
	if err := s.bindJSON(c, &body); err != nil {
		s.abortWithError(c, err)
		return
	}

	task, err := s.service.CreateTask(c.Request.Context(), currentUser(c), marketplace.NewTask{
		Title:       body.Title,
		Description: body.Description,
		Price:       body.Price,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTask(task))
}

//	@Summary	Get task
//	@Tags		task
//	@Produce	json
//	@Param		id	path		int		true	"task id"
//	@Success	200	{object}	tTask	"ok"
//	@failure	401	"unauthorized"
//	@failure	404	"task not found"
//	@Router		/api/tasks/{id} [get]
func (s *Server) handlerGetTask(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	task, err := s.service.GetTask(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTask(&task))
}

//	@Summary	Apply for task
//	@Schemes
//	@Description	assigns an open task to the current user
//	@Tags			task
//	@Produce		json
//	@Param			id	path		int		true	"task id"
//	@Success		200	{object}	tTask	"task assigned"
//	@failure		401	"unauthorized"
//	@failure		404	"task not found"
//	@failure		409	"task is not open or is your own"
//	@failure		500	"internal server error"
//	@Router			/api/tasks/{id}/apply [post]
func (s *Server) handlerApplyForTask(c *gin.Context) {
	s.taskAction(c, s.service.ApplyForTask)
}

//	@Summary	Complete task
//	@Schemes
//	@Description	pays the assignee from the creator's balance and closes the task
//	@Tags			task
//	@Produce		json
//	@Param			id	path		int		true	"task id"
//	@Success		200	{object}	tTask	"task completed"
//	@failure		401	"unauthorized"
//	@failure		402	"insufficient credits"
//	@failure		403	"only the creator can complete the task"
//	@failure		404	"task not found"
//	@failure		409	"task is not in progress"
//	@failure		500	"internal server error"
//	@Router			/api/tasks/{id}/complete [post]
func (s *Server) handlerCompleteTask(c *gin.Context) {
	s.taskAction(c, s.service.CompleteTask)
}

func (s *Server) taskAction(c *gin.Context, action func(ctx context.Context, userID, taskID uint) error) {
	ctx := c.Request.Context()
	id, err := pathID(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	if err := action(ctx, currentUser(c), id); err != nil {
		s.abortWithError(c, err)
		return
	}

	task, err := s.service.GetTask(ctx, id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTask(&task))
}
